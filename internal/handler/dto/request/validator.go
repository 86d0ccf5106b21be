package request

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

var (
	localeMu        sync.RWMutex
	supportedLocale = map[string]struct{}{}
)

// RegisterValidators installs the custom binding rules on gin's validator.
// Calling it again replaces the supported locale set.
func RegisterValidators(supportedLocales []string) error {
	set := make(map[string]struct{}, len(supportedLocales))
	for _, l := range supportedLocales {
		set[strings.ToLower(strings.TrimSpace(l))] = struct{}{}
	}
	localeMu.Lock()
	supportedLocale = set
	localeMu.Unlock()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("locale", validateLocale)
}

// validateLocale accepts a BCP 47 tag whose base language is supported, e.g. "en-GB".
func validateLocale(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		return true
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return false
	}
	base, _ := tag.Base()

	localeMu.RLock()
	defer localeMu.RUnlock()
	_, ok := supportedLocale[base.String()]
	return ok
}
