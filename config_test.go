package tops

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestNewConfigValidates(t *testing.T) {
	require.NoError(t, NewConfig().Validate())
}

func TestConfigValidateReportsEveryViolation(t *testing.T) {
	conf := &Config{ReadSize: -1, MetricRegistry: nil}
	err := conf.Validate()
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "expected *multierror.Error, got %T", err)
	require.Len(t, merr.Errors, 2)

	var confErr ConfigurationError
	require.ErrorAs(t, err, &confErr)
}
