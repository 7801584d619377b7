package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"nurse-agenda/internal/model"
)

// Catalog is read-only reference data. Lookups report absence with a bool;
// callers must handle the miss.
type Catalog struct {
	nurses   []model.Nurse
	services []model.Service
}

func New(nurses []model.Nurse, services []model.Service) (*Catalog, error) {
	c := &Catalog{
		nurses:   append([]model.Nurse(nil), nurses...),
		services: append([]model.Service(nil), services...),
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the built-in nurses and services.
func Default() *Catalog {
	return &Catalog{nurses: defaultNurses(), services: defaultServices()}
}

func defaultNurses() []model.Nurse {
	return []model.Nurse{
		{ID: "maria", Name: "Maria Silva"},
		{ID: "ana", Name: "Ana Santos"},
		{ID: "juliana", Name: "Juliana Lima"},
	}
}

func defaultServices() []model.Service {
	return []model.Service{
		{ID: "pre-natal", Name: "Consulta Pré-natal", Description: "Acompanhamento gestacional", DurationMinutes: 60},
		{ID: "pos-parto", Name: "Consulta Pós-parto", Description: "Acompanhamento pós-parto", DurationMinutes: 60},
		{ID: "amamentacao", Name: "Consultoria em Amamentação", Description: "Orientação para amamentação", DurationMinutes: 45},
		{ID: "planejamento-familiar", Name: "Planejamento Familiar", Description: "Orientação contraceptiva", DurationMinutes: 45},
		{ID: "saude-mulher", Name: "Saúde da Mulher", Description: "Consulta geral", DurationMinutes: 45},
	}
}

func (c *Catalog) ListNurses() []model.Nurse {
	return append([]model.Nurse(nil), c.nurses...)
}

func (c *Catalog) ListServices() []model.Service {
	return append([]model.Service(nil), c.services...)
}

func (c *Catalog) FindNurseByID(id string) (model.Nurse, bool) {
	id = strings.TrimSpace(id)
	for _, n := range c.nurses {
		if n.ID == id {
			return n, true
		}
	}
	return model.Nurse{}, false
}

func (c *Catalog) FindNurseByName(name string) (model.Nurse, bool) {
	name = strings.TrimSpace(name)
	for _, n := range c.nurses {
		if n.Name == name {
			return n, true
		}
	}
	return model.Nurse{}, false
}

func (c *Catalog) FindServiceByID(id string) (model.Service, bool) {
	id = strings.TrimSpace(id)
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return model.Service{}, false
}

func (c *Catalog) FindServiceByName(name string) (model.Service, bool) {
	name = strings.TrimSpace(name)
	for _, s := range c.services {
		if s.Name == name {
			return s, true
		}
	}
	return model.Service{}, false
}

func (c *Catalog) check() error {
	if len(c.nurses) == 0 {
		return errors.New("catalog: no nurses")
	}
	if len(c.services) == 0 {
		return errors.New("catalog: no services")
	}
	seen := make(map[string]bool)
	for _, n := range c.nurses {
		if n.ID == "" || n.Name == "" {
			return fmt.Errorf("catalog: nurse %q needs id and name", n.ID)
		}
		if seen[n.ID] {
			return fmt.Errorf("catalog: duplicate nurse id %q", n.ID)
		}
		seen[n.ID] = true
	}
	seen = make(map[string]bool)
	for _, s := range c.services {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("catalog: service %q needs id and name", s.ID)
		}
		if s.DurationMinutes <= 0 {
			return fmt.Errorf("catalog: service %q duration must be positive, got %d", s.ID, s.DurationMinutes)
		}
		if seen[s.ID] {
			return fmt.Errorf("catalog: duplicate service id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

type fileNurse struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	PicturePath *string `yaml:"picture_path"`
}

type fileService struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Description     string `yaml:"description"`
	DurationMinutes int    `yaml:"duration_minutes"`
}

type file struct {
	Nurses   []fileNurse   `yaml:"nurses"`
	Services []fileService `yaml:"services"`
}

// Load reads a YAML catalog that replaces the built-in one.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return nil, errors.New("catalog path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	nurses := make([]model.Nurse, 0, len(f.Nurses))
	for _, n := range f.Nurses {
		nurses = append(nurses, model.Nurse{
			ID:          strings.TrimSpace(n.ID),
			Name:        strings.TrimSpace(n.Name),
			PicturePath: n.PicturePath,
		})
	}
	services := make([]model.Service, 0, len(f.Services))
	for _, s := range f.Services {
		services = append(services, model.Service{
			ID:              strings.TrimSpace(s.ID),
			Name:            strings.TrimSpace(s.Name),
			Description:     strings.TrimSpace(s.Description),
			DurationMinutes: s.DurationMinutes,
		})
	}
	return New(nurses, services)
}
