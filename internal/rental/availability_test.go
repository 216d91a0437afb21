package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExpandRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		from string
		to   string
		want []string
	}{
		{
			name: "three days",
			from: "2024-01-01",
			to:   "2024-01-03",
			want: []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		},
		{
			name: "single day",
			from: "2024-02-29",
			to:   "2024-02-29",
			want: []string{"2024-02-29"},
		},
		{
			name: "month boundary",
			from: "2024-01-31",
			to:   "2024-02-01",
			want: []string{"2024-01-31", "2024-02-01"},
		},
		{
			name: "inverted range",
			from: "2024-01-03",
			to:   "2024-01-01",
			want: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ExpandRange(date(tt.from), date(tt.to)))
		})
	}
}

func TestExpandRange_MatchesRentalDays(t *testing.T) {
	t.Parallel()
	spans := []struct{ from, to string }{
		{"2024-01-01", "2024-01-01"},
		{"2024-01-01", "2024-01-03"},
		{"2024-02-27", "2024-03-02"},
		{"2023-12-25", "2024-01-05"},
	}
	for _, s := range spans {
		from, to := date(s.from), date(s.to)
		tokens := ExpandRange(from, to)
		require.Len(t, tokens, RentalDays(from, to))
		require.Equal(t, s.from, tokens[0])
		require.Equal(t, s.to, tokens[len(tokens)-1])
		for i := 1; i < len(tokens); i++ {
			prev := date(tokens[i-1])
			require.Equal(t, prev.AddDate(0, 0, 1).Format(time.DateOnly), tokens[i])
		}
	}
}

func TestFirstConflict(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		requested []string
		taken     []string
		want      string
	}{
		{
			name:      "middle day already taken",
			requested: ExpandRange(date("2024-01-01"), date("2024-01-03")),
			taken:     []string{"2024-01-02"},
			want:      "2024-01-02",
		},
		{
			name:      "no overlap",
			requested: ExpandRange(date("2024-01-01"), date("2024-01-03")),
			taken:     []string{"2024-01-05"},
			want:      "",
		},
		{
			name:      "first of several conflicts reported",
			requested: ExpandRange(date("2024-01-01"), date("2024-01-03")),
			taken:     []string{"2024-01-03", "2024-01-02"},
			want:      "2024-01-02",
		},
		{
			name:      "nothing taken",
			requested: []string{"2024-01-01"},
			taken:     nil,
			want:      "",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, FirstConflict(tt.requested, TokenSet(tt.taken)))
		})
	}
}

func TestIsDateBlocked(t *testing.T) {
	t.Parallel()
	now := date("2024-01-10")
	unavailable := TokenSet([]string{"2024-01-15", "2024-01-20"})

	require.True(t, IsDateBlocked(date("2024-01-09"), unavailable, now), "past day")
	require.True(t, IsDateBlocked(date("2024-01-15"), unavailable, now), "booked day")
	require.False(t, IsDateBlocked(date("2024-01-10"), unavailable, now), "today is rentable")
	require.False(t, IsDateBlocked(date("2024-01-16"), unavailable, now))
}

func TestIsRangeBlocked(t *testing.T) {
	t.Parallel()
	now := date("2024-01-10")
	unavailable := TokenSet([]string{"2024-01-15"})

	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"clear span", "2024-01-11", "2024-01-14", false},
		{"hits booked day", "2024-01-14", "2024-01-16", true},
		{"starts in the past", "2024-01-09", "2024-01-11", true},
		{"single blocked day", "2024-01-15", "2024-01-15", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, IsRangeBlocked(date(tt.from), date(tt.to), unavailable, now))
		})
	}
}
