package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/entitykit/entitykit/pkg/lifecycle"
)

// Person is a stored contact.
type Person struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `json:"email,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Person) TableName() string {
	return "people"
}

// EntityKey keys people by name in engines without a schema-derived primary
// key.
func (p *Person) EntityKey() string {
	return p.Name
}

// BeforeInsert rejects nameless people and normalizes the email address.
func (p *Person) BeforeInsert(ev *lifecycle.Event) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("person requires a name")
	}
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	return nil
}

// BeforeValidateProperties validates the named properties, or every
// property when the list is absent.
func (p *Person) BeforeValidateProperties(ev *lifecycle.Event, properties []string) error {
	if properties == nil {
		properties = []string{"name", "email"}
	}
	for _, prop := range properties {
		switch prop {
		case "name":
			if strings.TrimSpace(p.Name) == "" {
				return fmt.Errorf("person property %q must not be blank", prop)
			}
		case "email":
			if p.Email != "" && !strings.Contains(p.Email, "@") {
				return fmt.Errorf("person property %q is not an email address", prop)
			}
		default:
			return fmt.Errorf("person has no property %q", prop)
		}
	}
	return nil
}
