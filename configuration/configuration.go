package configuration

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/nuts-foundation/doc-signer/pkg/crypto"
)

// DocSignerConfiguration holds the file based configuration of the service
type DocSignerConfiguration struct {
	HttpPort        int    `mapstructure:"http_port"`
	HttpAddress     string `mapstructure:"http_address"`
	PublicUrl       string `mapstructure:"public_url"`
	DisclosureDelay string `mapstructure:"disclosure_delay"`
	KeySize         int    `mapstructure:"key_size"`
}

// Default config instance
var config *DocSignerConfiguration

// GetInstance returns the initialized config object. If there is no initialized object, it returns an error
func GetInstance() (*DocSignerConfiguration, error) {
	if config == nil {
		return nil, errors.New("cannot get instance of uninitialized config")
	}
	return config, nil
}

// Initialize is the default way of initializing the config. It sets the global config variable and makes sure
// the app can access the config object through the whole application
func Initialize(path, filename string) (err error) {
	config, err = LoadConfigFromFile(path, filename)
	return
}

// InitializeDefaults sets the global config to the default values, used when no config file is given
func InitializeDefaults() {
	config = &DocSignerConfiguration{}
	config.SetDefaults()
}

func LoadConfigFromFile(path, filename string) (*DocSignerConfiguration, error) {
	config := DocSignerConfiguration{}
	config.SetDefaults()
	if err := config.LoadFromFile(path, filename); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (config *DocSignerConfiguration) LoadFromFile(path, filename string) error {
	logrus.Infof("Loading config from %s/%s.yaml", path, filename)
	viper.AddConfigPath(path)
	viper.SetConfigName(filename)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	if err := viper.Unmarshal(&config); err != nil {
		return err
	}
	return nil
}

func (config *DocSignerConfiguration) SetDefaults() {
	config.HttpPort = 3002
	config.HttpAddress = fmt.Sprintf("localhost:%d", config.HttpPort)
	config.PublicUrl = fmt.Sprintf("http://%s", config.HttpAddress)
	config.DisclosureDelay = "2s"
	config.KeySize = crypto.MinKeySize
}

func (config *DocSignerConfiguration) Validate() error {
	if config.KeySize < crypto.MinKeySize {
		return fmt.Errorf("key_size must be at least %d bits", crypto.MinKeySize)
	}
	if _, err := time.ParseDuration(config.DisclosureDelay); err != nil {
		return fmt.Errorf("disclosure_delay is not a valid duration: %w", err)
	}
	return nil
}

// ParsedDisclosureDelay returns the disclosure delay as a duration. Validate must have passed.
func (config *DocSignerConfiguration) ParsedDisclosureDelay() time.Duration {
	delay, _ := time.ParseDuration(config.DisclosureDelay)
	return delay
}
