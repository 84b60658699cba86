package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rohmanhakim/linkscrub/internal/rules"
	"github.com/rohmanhakim/linkscrub/internal/textclean"
	"golang.org/x/net/idna"
	"gopkg.in/yaml.v3"
)

type configDTO struct {
	DisableDefaultRules bool            `json:"disableDefaultRules,omitempty" yaml:"disableDefaultRules,omitempty"`
	Rules               []domainRuleDTO `json:"rules,omitempty" yaml:"rules,omitempty" validate:"dive"`
	GlobalParams        []actionDTO     `json:"globalParams,omitempty" yaml:"globalParams,omitempty" validate:"dive"`
	Profile             *profileDTO     `json:"profile,omitempty" yaml:"profile,omitempty"`
	Trigger             string          `json:"trigger,omitempty" yaml:"trigger,omitempty" validate:"omitempty,oneof=hotkey auto"`
	Debug               bool            `json:"debug,omitempty" yaml:"debug,omitempty"`
	Quiet               bool            `json:"quiet,omitempty" yaml:"quiet,omitempty"`
	JSONLog             bool            `json:"jsonLog,omitempty" yaml:"jsonLog,omitempty"`
}

type domainRuleDTO struct {
	Domain  string      `json:"domain" yaml:"domain" validate:"required,domain"`
	Match   string      `json:"match,omitempty" yaml:"match,omitempty" validate:"omitempty,oneof=suffix exact"`
	Actions []actionDTO `json:"actions" yaml:"actions" validate:"required,min=1,dive"`
}

type actionDTO struct {
	Type  string `json:"type" yaml:"type" validate:"required,oneof=strip_param strip_param_prefix drop_all_params strip_path_from_marker"`
	Value string `json:"value,omitempty" yaml:"value,omitempty" validate:"required_unless=Type drop_all_params"`
}

type profileDTO struct {
	Name            string            `json:"name,omitempty" yaml:"name,omitempty"`
	Rules           map[string]string `json:"rules,omitempty" yaml:"rules,omitempty" validate:"dive,keys,required,endkeys,oneof=hotkey auto disabled"`
	DashReplacement *string           `json:"dashReplacement,omitempty" yaml:"dashReplacement,omitempty"`
	Replacements    []replacementDTO  `json:"replacements,omitempty" yaml:"replacements,omitempty" validate:"dive"`
}

type replacementDTO struct {
	Find    string `json:"find" yaml:"find" validate:"required"`
	Replace string `json:"replace" yaml:"replace"`
}

var (
	validate  = newValidator()
	hostnames = validator.New()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("domain", isDomain)
	return v
}

// isDomain accepts RFC 1123 hostnames, checking internationalized names
// in their ASCII form.
func isDomain(fl validator.FieldLevel) bool {
	ascii, err := idna.Lookup.ToASCII(strings.TrimSuffix(fl.Field().String(), "."))
	if err != nil {
		return false
	}
	return hostnames.Var(ascii, "hostname_rfc1123") == nil
}

func validateDTO(dto configDTO) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatValidationError(e))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "required_unless":
		return fmt.Sprintf("%s is required", e.Namespace())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", e.Namespace(), e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", e.Namespace(), e.Param(), e.Value())
	case "domain":
		return fmt.Sprintf("%s must be a hostname, got %q", e.Namespace(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation '%s'", e.Namespace(), e.Tag())
	}
}

func (d domainRuleDTO) toDomainRule() (rules.DomainRule, error) {
	actions := make([]rules.Action, 0, len(d.Actions))
	for _, a := range d.Actions {
		action, err := a.toAction()
		if err != nil {
			return rules.DomainRule{}, err
		}
		actions = append(actions, action)
	}
	if d.Match == rules.MatchExact.String() {
		return rules.NewExactDomainRule(d.Domain, actions...), nil
	}
	return rules.NewDomainRule(d.Domain, actions...), nil
}

func (a actionDTO) toAction() (rules.Action, error) {
	kind, ok := rules.ParseActionKind(a.Type)
	if !ok {
		return rules.Action{}, fmt.Errorf("%w: unknown action type %q", ErrInvalidConfig, a.Type)
	}
	switch kind {
	case rules.ActionStripQueryParamPrefix:
		return rules.StripQueryParamPrefix(a.Value), nil
	case rules.ActionDropAllQueryParams:
		return rules.DropAllQueryParams(), nil
	case rules.ActionStripPathFromMarker:
		return rules.StripPathFromMarker(a.Value), nil
	default:
		return rules.StripQueryParam(a.Value), nil
	}
}

// toProfile layers the DTO over the default profile.
func (p profileDTO) toProfile() (textclean.Profile, error) {
	profile := textclean.DefaultProfile()
	if p.Name != "" {
		profile = profile.WithName(p.Name)
	}
	for name, modeName := range p.Rules {
		id, ok := textclean.ParseRuleID(name)
		if !ok {
			return textclean.Profile{}, fmt.Errorf("%w: unknown cleaning rule %q", ErrInvalidConfig, name)
		}
		mode, _ := textclean.ParseMode(modeName)
		profile = profile.WithRule(id, mode)
	}
	if p.DashReplacement != nil {
		profile = profile.WithDashReplacement(*p.DashReplacement)
	}
	for _, r := range p.Replacements {
		profile = profile.WithReplacements(textclean.Replacement{Find: r.Find, Replace: r.Replace})
	}
	return profile, nil
}

// MarshalRules renders table in the config file format. Default rules are
// disabled in the output, so loading it back yields the same table.
func MarshalRules(table *rules.Table) ([]byte, error) {
	dto := configDTO{
		DisableDefaultRules: true,
		GlobalParams:        actionDTOs(table.Global()),
	}
	for _, rule := range table.DomainRules() {
		dto.Rules = append(dto.Rules, domainRuleDTO{
			Domain:  rule.Domain(),
			Match:   rule.Mode().String(),
			Actions: actionDTOs(rule.Actions()),
		})
	}
	return yaml.Marshal(dto)
}

func actionDTOs(actions []rules.Action) []actionDTO {
	out := make([]actionDTO, 0, len(actions))
	for _, a := range actions {
		out = append(out, actionDTO{Type: a.Kind().String(), Value: a.Arg()})
	}
	return out
}
