package pkg

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultToastDuration = 2 * time.Second
	DefaultWarnDuration  = 3 * time.Second
	DefaultTitle         = "chessterm"
)

// Config holds everything the client needs to start
type Config struct {
	Title         string `validate:"max=40"`
	FEN           string
	Promotion     string `validate:"oneof=q r b n"`
	ThemeName     string `validate:"required"`
	ThemesPath    string `validate:"omitempty,file"`
	Flip          bool
	NotifyDelay   time.Duration `validate:"gte=0"`
	ToastDuration time.Duration `validate:"gt=0"`
	WarnDuration  time.Duration `validate:"gt=0"`
}

func DefaultConfig() Config {
	return Config{
		Title:         DefaultTitle,
		Promotion:     "q",
		ThemeName:     "basic",
		NotifyDelay:   DefaultNotifyDelay,
		ToastDuration: DefaultToastDuration,
		WarnDuration:  DefaultWarnDuration,
	}
}

var validate = validator.New()

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// MatchConfig extracts the match settings
func (c Config) MatchConfig() (MatchConfig, error) {
	promo, err := ParsePromotion(c.Promotion)
	if err != nil {
		return MatchConfig{}, err
	}
	return MatchConfig{
		FEN:         c.FEN,
		Promotion:   promo,
		NotifyDelay: c.NotifyDelay,
	}, nil
}
