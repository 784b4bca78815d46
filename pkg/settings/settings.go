package settings

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/tendmd/tend/pkg/schedule"
)

// Settings carries everything the commands need to scan and advance a
// vault. One value is loaded per invocation and handed along explicitly;
// nothing reads configuration ambiently after that.
type Settings struct {
	Vault           string `json:"vault"`
	DateProperty    string `json:"date_property"`
	FreqProperty    string `json:"freq_property"`
	UpcomingDays    int    `json:"upcoming_days"`
	Intervals       string `json:"intervals"`
	NotifyOnStartup bool   `json:"notify_on_startup"`
	History         string `json:"history"`
}

// Load reads .tend.yaml from TEND_CONFIG_PATH, the working directory, or
// the home directory, in that order, with TEND_* variables overriding the
// file. A missing file is fine; defaults cover everything.
func Load() (*Settings, error) {
	viper.SetDefault("vault", ".")
	viper.SetDefault("date_property", "review_next")
	viper.SetDefault("freq_property", "review_freq")
	viper.SetDefault("upcoming_days", 7)
	viper.SetDefault("intervals", schedule.DefaultIntervals)
	viper.SetDefault("notify_on_startup", false)
	viper.SetDefault("history", "~/.tend/history")

	viper.SetConfigName(".tend") // .yaml is implicit
	viper.SetEnvPrefix("TEND")
	viper.AutomaticEnv()

	if override := os.Getenv("TEND_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Settings{
		Vault:           viper.GetString("vault"),
		DateProperty:    viper.GetString("date_property"),
		FreqProperty:    viper.GetString("freq_property"),
		UpcomingDays:    viper.GetInt("upcoming_days"),
		Intervals:       viper.GetString("intervals"),
		NotifyOnStartup: viper.GetBool("notify_on_startup"),
		History:         viper.GetString("history"),
	}, nil
}

// Fields returns the configured frontmatter property names.
func (s *Settings) Fields() schedule.Fields {
	return schedule.Fields{Date: s.DateProperty, Freq: s.FreqProperty}
}

// Ladder parses the configured interval list.
func (s *Settings) Ladder() schedule.Intervals {
	return schedule.ParseIntervals(s.Intervals)
}
