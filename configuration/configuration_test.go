package configuration

import (
	"reflect"
	"testing"
	"time"
)

func TestGetInstance(t *testing.T) {
	t.Run("it errors when no instance is set", func(t *testing.T) {
		config = nil

		if _, err := GetInstance(); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("returns the instance if set", func(t *testing.T) {
		config = &DocSignerConfiguration{}

		instance, err := GetInstance()
		if err != nil {
			t.Errorf("expected error to be nil instead of %v", err)
		}
		if instance != config {
			t.Errorf("expected instance to be the config instead of: %v", instance)
		}
	})
}

func TestInitialize(t *testing.T) {
	t.Run("it initializes the global config", func(t *testing.T) {
		err := Initialize("../testdata", "testconfig")
		if config == nil {
			t.Error("expected global config to be set")
		}
		if err != nil {
			t.Errorf("expected error to be nil instead of %v", err)
		}
	})

	t.Run("it throws an error on failure", func(t *testing.T) {
		err := Initialize("unknown", "path")
		if err == nil {
			t.Error("expected an error")
		}
	})
}

func TestInitializeDefaults(t *testing.T) {
	config = nil

	InitializeDefaults()

	if config == nil {
		t.Fatal("expected global config to be set")
	}
	if config.HttpPort != 3002 {
		t.Errorf("expected the default port instead of: %d", config.HttpPort)
	}
}

func TestConfiguration(t *testing.T) {
	type testValues struct {
		Name     string
		Expected interface{}
	}

	testValue := func(t *testing.T, config *DocSignerConfiguration, test *testValues) {
		t.Helper()

		r := reflect.ValueOf(config)
		got := reflect.Indirect(r).FieldByName(test.Name)

		if test.Expected != got.Interface() {
			t.Errorf("config.%s has the wrong value. Expected: %v, got %v", test.Name, test.Expected, got)
		}
	}

	t.Run("load from file", func(t *testing.T) {
		var config DocSignerConfiguration

		if err := config.LoadFromFile("../testdata/", "testconfig"); err != nil {
			t.Errorf("Could not load value from file: %v", err)
		}

		for _, v := range []*testValues{
			{"HttpPort", 3001},
			{"HttpAddress", "signer.example.com:3001"},
			{"PublicUrl", "https://signer.example.com"},
			{"DisclosureDelay", "50ms"},
			{"KeySize", 4096},
		} {
			testValue(t, &config, v)
		}
	})

	t.Run("test defaults", func(t *testing.T) {
		var config DocSignerConfiguration

		config.SetDefaults()

		for _, v := range []*testValues{
			{"HttpPort", 3002},
			{"HttpAddress", "localhost:3002"},
			{"PublicUrl", "http://localhost:3002"},
			{"DisclosureDelay", "2s"},
			{"KeySize", 2048},
		} {
			testValue(t, &config, v)
		}
	})
}

func TestDocSignerConfiguration_Validate(t *testing.T) {
	valid := DocSignerConfiguration{}
	valid.SetDefaults()

	t.Run("the defaults are valid", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Errorf("expected error to be nil instead of %v", err)
		}
	})

	t.Run("a small key size is rejected", func(t *testing.T) {
		config := valid
		config.KeySize = 512

		if err := config.Validate(); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("a malformed delay is rejected", func(t *testing.T) {
		config := valid
		config.DisclosureDelay = "not a duration"

		if err := config.Validate(); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestDocSignerConfiguration_ParsedDisclosureDelay(t *testing.T) {
	config := DocSignerConfiguration{DisclosureDelay: "150ms"}

	if config.ParsedDisclosureDelay() != 150*time.Millisecond {
		t.Errorf("expected 150ms instead of: %v", config.ParsedDisclosureDelay())
	}
}
