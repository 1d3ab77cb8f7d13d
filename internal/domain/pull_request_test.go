package domain_test

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedora-infra/spechub/internal/domain"
)

func TestPRStatus_NewPRStatus(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      domain.PRStatus
		wantError bool
	}{
		{name: "valid - Open", input: "Open", want: domain.StatusOpen},
		{name: "valid - Merged", input: "Merged", want: domain.StatusMerged},
		{name: "valid - Rejected", input: "Rejected", want: domain.StatusRejected},
		{name: "valid - Invalid", input: "Invalid", want: domain.StatusInvalid},
		{name: "invalid - empty string", input: "", wantError: true},
		{name: "invalid - random string", input: "Closed", wantError: true},
		{name: "invalid - uppercase", input: "OPEN", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := domain.NewPRStatus(tt.input)

			if tt.wantError {
				assert.Error(t, err)
				assert.Empty(t, status)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, status)
			}
		})
	}
}

func TestPRStatus_IsClosed(t *testing.T) {
	tests := []struct {
		status domain.PRStatus
		want   bool
	}{
		{status: domain.StatusOpen, want: false},
		{status: domain.StatusMerged, want: true},
		{status: domain.StatusRejected, want: true},
		{status: domain.StatusInvalid, want: true},
		{status: "", want: false},
		{status: "Closed", want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsClosed())
		})
	}
}

func TestPRStatus_Scan(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		want      domain.PRStatus
		wantError bool
	}{
		{name: "valid - string Open", input: "Open", want: domain.StatusOpen},
		{name: "valid - []byte Rejected", input: []byte("Rejected"), want: domain.StatusRejected},
		{name: "invalid - nil", input: nil, wantError: true},
		{name: "invalid - int", input: 123, wantError: true},
		{name: "invalid - unknown string", input: "Closed", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var status domain.PRStatus
			err := status.Scan(tt.input)

			if tt.wantError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, status)
			}
		})
	}
}

func TestPRStatus_Value(t *testing.T) {
	tests := []struct {
		name      string
		status    domain.PRStatus
		want      driver.Value
		wantError bool
	}{
		{name: "valid - Open", status: domain.StatusOpen, want: "Open"},
		{name: "valid - Merged", status: domain.StatusMerged, want: "Merged"},
		{name: "invalid - empty", status: "", wantError: true},
		{name: "invalid - unknown", status: "Closed", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.status.Value()

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, value)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, value)
			}
		})
	}
}
