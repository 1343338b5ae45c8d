package detection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avesong/perch-go/internal/errors"
)

func TestParseRecordingStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "plain convention",
			path: "site4_20240511_063000.wav",
			want: time.Date(2024, 5, 11, 6, 30, 0, 0, time.Local),
		},
		{
			name: "nested path with prefix",
			path: "/data/recordings/marsh-north_20231201_235959.flac",
			want: time.Date(2023, 12, 1, 23, 59, 59, 0, time.Local),
		},
		{
			name: "bare timestamp",
			path: "20240511_063000.wav",
			want: time.Date(2024, 5, 11, 6, 30, 0, 0, time.Local),
		},
		{
			name:    "no timestamp",
			path:    "morning-chorus.wav",
			wantErr: true,
		},
		{
			name:    "malformed timestamp",
			path:    "site4_2024_0511063000.wav",
			wantErr: true,
		},
		{
			name:    "too short",
			path:    "a.wav",
			wantErr: true,
		},
		{
			name:    "out of range date",
			path:    "site4_20241341_063000.wav",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRecordingStart(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.HasCategory(err, errors.CategoryFileParsing))
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestTimestampString(t *testing.T) {
	t.Parallel()

	d := Detection{Timestamp: time.Date(2024, 5, 11, 6, 30, 0, 0, time.Local)}
	assert.Equal(t, "20240511_063000", d.TimestampString())

	var zero Detection
	assert.Empty(t, zero.TimestampString())
}
