package seed

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Fixtures is a demo data set. Rides reference categories by name and
// riders by username.
type Fixtures struct {
	Categories []CategoryFixture `yaml:"categories" validate:"dive"`
	Users      []UserFixture     `yaml:"users"      validate:"dive"`
	Rides      []RideFixture     `yaml:"rides"      validate:"dive"`
}

type CategoryFixture struct {
	Name        string        `yaml:"name"         validate:"required"`
	AverageTime time.Duration `yaml:"average_time" validate:"gt=0"`
}

type UserFixture struct {
	Username       string `yaml:"username"         validate:"required,max=64"`
	Phone          string `yaml:"phone"            validate:"omitempty,e164"`
	TelegramChatID *int64 `yaml:"telegram_chat_id"`
}

type RideFixture struct {
	Category  string        `yaml:"category"   validate:"required"`
	AgencyID  string        `yaml:"agency_id"`
	From      string        `yaml:"from"       validate:"required"`
	To        string        `yaml:"to"         validate:"required,nefield=From"`
	DepartsIn time.Duration `yaml:"departs_in" validate:"gt=0"`
	Seats     int           `yaml:"seats"      validate:"gt=0"`
	Price     float64       `yaml:"price"      validate:"gte=0"`
	Riders    []string      `yaml:"riders"     validate:"dive,required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes YAML fixtures and validates them.
func Parse(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixtures
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty fixtures", domain.ErrValidation)
		}
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	if err := fx.Validate(); err != nil {
		return nil, err
	}

	return &fx, nil
}

// Validate checks field constraints and cross references between sections.
func (fx *Fixtures) Validate() error {
	if err := validate.Struct(fx); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	categories := make(map[string]struct{}, len(fx.Categories))
	for _, c := range fx.Categories {
		if _, dup := categories[c.Name]; dup {
			return fmt.Errorf("%w: duplicate category %q", domain.ErrValidation, c.Name)
		}
		categories[c.Name] = struct{}{}
	}

	users := make(map[string]struct{}, len(fx.Users))
	for _, u := range fx.Users {
		if _, dup := users[u.Username]; dup {
			return fmt.Errorf("%w: duplicate user %q", domain.ErrValidation, u.Username)
		}
		users[u.Username] = struct{}{}
	}

	for i, r := range fx.Rides {
		if _, ok := categories[r.Category]; !ok {
			return fmt.Errorf("%w: ride %d: unknown category %q", domain.ErrValidation, i, r.Category)
		}
		if len(r.Riders) > r.Seats {
			return fmt.Errorf("%w: ride %d: %d riders for %d seats",
				domain.ErrValidation, i, len(r.Riders), r.Seats)
		}
		for _, name := range r.Riders {
			if _, ok := users[name]; !ok {
				return fmt.Errorf("%w: ride %d: unknown rider %q", domain.ErrValidation, i, name)
			}
		}
	}

	return nil
}
