// Package validation evaluates ordered per-field rules against a request.
//
// A Rule binds one field of the path parameters or of the JSON body to a
// go-playground/validator tag and the message reported when the tag fails.
// Every rule of a list runs, whatever the outcome of the previous ones, so a
// single request may collect several failures for the same field.
package validation

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"
)

// DefaultMessage is reported by rules declared without a message.
const DefaultMessage = "Invalid value"

const (
	failuresKey = "validation.failures"
	payloadKey  = "validation.payload"
)

// Location names the part of the request a rule reads from.
type Location string

const (
	LocationParams Location = "params"
	LocationBody   Location = "body"
)

// Rule is a single (field, predicate, message) check.
type Rule struct {
	Location Location
	Field    string
	Tag      string
	Message  string
}

// Param declares a rule over a path parameter.
func Param(field, tag, message string) Rule {
	return Rule{Location: LocationParams, Field: field, Tag: tag, Message: message}
}

// Body declares a rule over a top-level JSON body field.
func Body(field, tag, message string) Rule {
	return Rule{Location: LocationBody, Field: field, Tag: tag, Message: message}
}

// Failure describes one violated rule.
type Failure struct {
	Type     string   `json:"type"`
	Value    any      `json:"value,omitempty"`
	Msg      string   `json:"msg"`
	Path     string   `json:"path"`
	Location Location `json:"location"`
}

// Input is the request data rules are evaluated against.
type Input struct {
	Params map[string]string
	Body   map[string]any
}

func (in Input) lookup(rule Rule) any {
	switch rule.Location {
	case LocationParams:
		if v, ok := in.Params[rule.Field]; ok {
			return v
		}
	case LocationBody:
		if v, ok := in.Body[rule.Field]; ok {
			return v
		}
	}
	return nil
}

// Engine evaluates rules with a validator carrying the custom predicates.
type Engine struct {
	validate *validator.Validate
}

// New creates an Engine and registers the custom tags:
//
//	notempty  value rendered as text is not empty
//	positive  value coerced to a number is greater than zero
//	int       text is a decimal integer without leading zeros, any magnitude
//	numeric   text is a decimal number, ".5" included, no exponent
//	boolean   text is one of true, false, 1, 0
//
// numeric and boolean replace the validator built-ins of the same name, which
// reject JSON numbers as booleans and accept "True" or "t".
func New() *Engine {
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"notempty": notEmpty,
		"positive": positive,
		"int":      integer,
		"numeric":  numeric,
		"boolean":  boolean,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation: register %q: %v", tag, err))
		}
	}
	return &Engine{validate: v}
}

// Evaluate runs every rule in declaration order and returns the failures.
// Absent or null fields fail every rule declared on them.
func (e *Engine) Evaluate(rules []Rule, in Input) []Failure {
	failures := make([]Failure, 0)
	for _, rule := range rules {
		value := in.lookup(rule)
		if err := e.validate.Var(value, rule.Tag); err == nil {
			continue
		}
		msg := rule.Message
		if msg == "" {
			msg = DefaultMessage
		}
		failures = append(failures, Failure{
			Type:     "field",
			Value:    value,
			Msg:      msg,
			Path:     rule.Field,
			Location: rule.Location,
		})
	}
	return failures
}

// Check returns a middleware that evaluates rules against the current request
// and records the failures for HandleInputErrors. It never stops the chain on
// a rule failure; a body that is not a JSON object is rejected with 400.
func (e *Engine) Check(rules ...Rule) fiber.Handler {
	needsBody := false
	for _, rule := range rules {
		if rule.Location == LocationBody {
			needsBody = true
			break
		}
	}

	return func(c *fiber.Ctx) error {
		in := Input{Params: c.AllParams()}
		if needsBody {
			body, err := Payload(c)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
			}
			in.Body = body
		}

		c.Locals(failuresKey, append(Failures(c), e.Evaluate(rules, in)...))
		return c.Next()
	}
}

// Failures returns the failures recorded for the current request.
func Failures(c *fiber.Ctx) []Failure {
	failures, _ := c.Locals(failuresKey).([]Failure)
	return failures
}

// Payload decodes the JSON body once per request. An empty body is an empty object.
func Payload(c *fiber.Ctx) (map[string]any, error) {
	if cached, ok := c.Locals(payloadKey).(map[string]any); ok {
		return cached, nil
	}

	payload := make(map[string]any)
	if raw := c.Body(); len(bytes.TrimSpace(raw)) > 0 {
		if err := c.App().Config().JSONDecoder(raw, &payload); err != nil {
			return nil, fmt.Errorf("failed to decode request body: %w", err)
		}
	}
	c.Locals(payloadKey, payload)
	return payload, nil
}

func text(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func notEmpty(fl validator.FieldLevel) bool {
	return text(fl.Field().Interface()) != ""
}

func positive(fl validator.FieldLevel) bool {
	n, err := cast.ToFloat64E(fl.Field().Interface())
	return err == nil && n > 0
}

var (
	integerPattern = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*)$`)
	numericPattern = regexp.MustCompile(`^[+-]?([0-9]*[.])?[0-9]+$`)
)

func integer(fl validator.FieldLevel) bool {
	return integerPattern.MatchString(text(fl.Field().Interface()))
}

func numeric(fl validator.FieldLevel) bool {
	return numericPattern.MatchString(text(fl.Field().Interface()))
}

func boolean(fl validator.FieldLevel) bool {
	switch text(fl.Field().Interface()) {
	case "true", "false", "1", "0":
		return true
	}
	return false
}
