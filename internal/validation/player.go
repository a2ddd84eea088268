package validation

import (
	"fmt"
	"strings"

	"github.com/weixigu/boardgame-go/internal/model"
)

// Field error codes
const (
	CodeRequired  = "field.required"
	CodeUntrimmed = "untrimmed.string"
	CodeNegative  = "negative.value"
)

// FieldError describes a single malformed field on a submitted record
type FieldError struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s [%s]", e.Field, e.Code)
}

// CheckPlayer returns every field-level problem with a submitted player:
// missing or untrimmed names, an untrimmed nickname, negative counters.
func CheckPlayer(player *model.Player) []FieldError {
	var errs []FieldError

	errs = append(errs, checkName("firstName", player.FirstName)...)
	errs = append(errs, checkName("lastName", player.LastName)...)

	if player.NickName != strings.TrimSpace(player.NickName) {
		errs = append(errs, FieldError{Field: "nickName", Code: CodeUntrimmed})
	}

	if player.NumWin < 0 {
		errs = append(errs, FieldError{Field: "numWin", Code: CodeNegative})
	}
	if player.NumLoss < 0 {
		errs = append(errs, FieldError{Field: "numLoss", Code: CodeNegative})
	}
	if player.NumDraw < 0 {
		errs = append(errs, FieldError{Field: "numDraw", Code: CodeNegative})
	}

	return errs
}

// ValidatePlayer wraps CheckPlayer's findings into a single error, or nil
// when the player is well-formed
func ValidatePlayer(player *model.Player) error {
	errs := CheckPlayer(player)
	if len(errs) == 0 {
		return nil
	}

	parts := make([]string, len(errs))
	for i, fe := range errs {
		parts[i] = fe.String()
	}
	return fmt.Errorf("%w: %s", model.ErrInvalidPlayer, strings.Join(parts, "; "))
}

func checkName(field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		return []FieldError{{Field: field, Code: CodeRequired}}
	}
	if value != strings.TrimSpace(value) {
		return []FieldError{{Field: field, Code: CodeUntrimmed}}
	}
	return nil
}
