package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOutRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CheckOutRequest
		wantErr bool
	}{
		{
			name: "explicit record id",
			req:  CheckOutRequest{AttendanceID: "0b4f9c2e-8f7a-4f43-9d2a-1c5b8e6d3a21"},
		},
		{
			// Omitting the id closes the caller's open session.
			name: "no record id",
			req:  CheckOutRequest{},
		},
		{
			name:    "malformed record id",
			req:     CheckOutRequest{AttendanceID: "not-a-uuid"},
			wantErr: true,
		},
		{
			name:    "malformed timestamp",
			req:     CheckOutRequest{Timestamp: "yesterday"},
			wantErr: true,
		},
		{
			name: "valid timestamp",
			req:  CheckOutRequest{Timestamp: "2025-03-01T17:30:00Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
