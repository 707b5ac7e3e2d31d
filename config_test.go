package derpi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(config{ServerAddress: DefaultServerAddress, APIKey: "abc"}); err != nil {
		t.Fatalf("exp nil err, got: %v", err)
	}

	err := validateConfig(config{})

	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("exp FieldErrors, got: %T: %v", err, err)
	}

	if diff := cmp.Diff([]string{"server_address"}, fieldNames(fe)); diff != "" {
		t.Errorf("fields mismatch (-exp +got):\n%s", diff)
	}

	if got, exp := fe.Fields()["server_address"], "server_address is a required field"; got != exp {
		t.Errorf("exp message %q, got %q", exp, got)
	}
}

func TestFieldErrors_Error(t *testing.T) {
	fe := FieldErrors{
		{Field: "server_address", Err: "bad"},
		{Field: "api_key", Err: "worse"},
	}

	exp := "server_address: bad; api_key: worse"
	if fe.Error() != exp {
		t.Errorf("exp %q, got %q", exp, fe.Error())
	}
}

func fieldNames(fe FieldErrors) []string {
	names := make([]string, len(fe))
	for i, f := range fe {
		names[i] = f.Field
	}
	return names
}
