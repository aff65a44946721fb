package actions

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Service bundles every core action. Handlers call these with plain
// parameter structs and never see transactions or sessions.
type Service struct {
	db       *gorm.DB
	validate *validator.Validate

	// dispatch runs post-commit side effects (interaction logging and
	// reputation). Best-effort by design: a crash between commit and
	// dispatch loses the side effect, never the primary write.
	dispatch func(fn func())
}

func New(db *gorm.DB) *Service {
	return &Service{
		db:       db,
		validate: validator.New(),
		dispatch: func(fn func()) {
			go func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("deferred task panicked: %v", r)
					}
				}()
				fn()
			}()
		},
	}
}

// SetDispatcher replaces the side-effect dispatcher. Tests install a
// synchronous one so deferred work is observable.
func (s *Service) SetDispatcher(dispatch func(fn func())) {
	s.dispatch = dispatch
}

// validateParams turns validator failures into the field→messages map the
// presentation layer renders.
func (s *Service) validateParams(params any) error {
	err := s.validate.Struct(params)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		fields[name] = append(fields[name], validationMessage(fe))
	}
	return &ValidationError{Fields: fields}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
	case "min":
		return fmt.Sprintf("%s must be at least %s", strings.ToLower(fe.Field()), fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s", strings.ToLower(fe.Field()), fe.Param())
	case "email":
		return "please provide a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", strings.ToLower(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field()))
	}
}
