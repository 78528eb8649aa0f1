package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hinananoha/booth-order-list/pkg/period"
)

func at(s string) time.Time {
	t, err := time.Parse(time.DateTime, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func TestNew_BeginAfterEnd(t *testing.T) {
	_, err := period.New(ptr(at("2021-05-02 00:00:00")), ptr(at("2021-05-01 00:00:00")))
	require.Error(t, err)
	assert.ErrorIs(t, err, period.ErrInvalidArgument)
}

func TestNew_ZeroBound(t *testing.T) {
	_, err := period.New(&time.Time{}, nil)
	assert.ErrorIs(t, err, period.ErrInvalidArgument)

	_, err = period.New(nil, &time.Time{})
	assert.ErrorIs(t, err, period.ErrInvalidArgument)
}

func TestNew_EqualBounds(t *testing.T) {
	moment := at("2021-05-01 12:00:00")
	p, err := period.New(&moment, &moment)
	require.NoError(t, err)
	assert.True(t, p.Contains(moment))
	assert.False(t, p.Contains(moment.Add(time.Second)))
}

func TestNew_CopiesBounds(t *testing.T) {
	begin := at("2021-05-01 00:00:00")
	p, err := period.New(&begin, nil)
	require.NoError(t, err)

	begin = at("2030-01-01 00:00:00")
	assert.True(t, p.Contains(at("2021-06-01 00:00:00")))
}

func TestContains(t *testing.T) {
	begin := at("2021-05-01 00:00:00")
	end := at("2021-05-31 00:00:00")

	tests := []struct {
		name  string
		begin *time.Time
		end   *time.Time
		t     time.Time
		want  bool
	}{
		{"unbounded far past", nil, nil, at("1900-01-01 00:00:00"), true},
		{"unbounded far future", nil, nil, at("9999-12-31 23:59:59"), true},
		{"end only before", nil, &end, at("2021-04-01 00:00:00"), true},
		{"end only at end", nil, &end, end, true},
		{"end only after", nil, &end, end.Add(time.Nanosecond), false},
		{"begin only at begin", &begin, nil, begin, true},
		{"begin only before", &begin, nil, begin.Add(-time.Nanosecond), false},
		{"begin only after", &begin, nil, at("2099-01-01 00:00:00"), true},
		{"both at begin", &begin, &end, begin, true},
		{"both at end", &begin, &end, end, true},
		{"both inside", &begin, &end, at("2021-05-10 10:00:00"), true},
		{"both before", &begin, &end, at("2021-04-30 23:59:59"), false},
		{"both after end day start", &begin, &end, at("2021-05-31 00:00:01"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := period.New(tt.begin, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Contains(tt.t))
		})
	}
}

func TestParse(t *testing.T) {
	p, err := period.Parse("2021-05-01", "2021-05-31")
	require.NoError(t, err)

	b, ok := p.Begin()
	require.True(t, ok)
	assert.Equal(t, at("2021-05-01 00:00:00"), b)

	e, ok := p.End()
	require.True(t, ok)
	assert.Equal(t, at("2021-05-31 00:00:00"), e)
}

func TestParse_OpenBounds(t *testing.T) {
	p, err := period.Parse("", "")
	require.NoError(t, err)
	assert.True(t, p.Unbounded())

	p, err = period.Parse("2021-05-01", "")
	require.NoError(t, err)
	_, ok := p.End()
	assert.False(t, ok)
}

func TestParse_Malformed(t *testing.T) {
	for _, s := range []string{"2021/05/01", "2021-5-1", "yesterday", "2021-02-30"} {
		t.Run(s, func(t *testing.T) {
			_, err := period.Parse(s, "")
			assert.ErrorIs(t, err, period.ErrInvalidArgument)
		})
	}

	_, err := period.Parse("2021-06-01", "2021-05-01")
	assert.ErrorIs(t, err, period.ErrInvalidArgument)
}

func TestCurrentMonth(t *testing.T) {
	tests := []struct {
		now   time.Time
		begin time.Time
		end   time.Time
	}{
		{
			now:   at("2021-05-10 10:00:00"),
			begin: at("2021-05-01 00:00:00"),
			end:   time.Date(2021, 5, 31, 23, 59, 59, 999999000, time.UTC),
		},
		{
			now:   at("2024-02-29 23:00:00"),
			begin: at("2024-02-01 00:00:00"),
			end:   time.Date(2024, 2, 29, 23, 59, 59, 999999000, time.UTC),
		},
		{
			now:   at("2023-02-01 00:00:00"),
			begin: at("2023-02-01 00:00:00"),
			end:   time.Date(2023, 2, 28, 23, 59, 59, 999999000, time.UTC),
		},
		{
			now:   at("2021-12-31 23:59:59"),
			begin: at("2021-12-01 00:00:00"),
			end:   time.Date(2021, 12, 31, 23, 59, 59, 999999000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.now.Format(time.DateOnly), func(t *testing.T) {
			p := period.CurrentMonth(tt.now)
			b, _ := p.Begin()
			e, _ := p.End()
			assert.Equal(t, tt.begin, b)
			assert.Equal(t, tt.end, e)
			assert.True(t, p.Contains(tt.now))
			assert.True(t, p.Contains(e))
			assert.False(t, p.Contains(b.Add(-time.Second)))
			assert.False(t, p.Contains(e.Add(time.Microsecond)))
		})
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, period.DaysIn(2000, time.February))
	assert.Equal(t, 28, period.DaysIn(1900, time.February))
	assert.Equal(t, 31, period.DaysIn(2021, time.January))
	assert.Equal(t, 30, period.DaysIn(2021, time.April))
}

func TestString(t *testing.T) {
	p, err := period.Parse("2021-05-01", "")
	require.NoError(t, err)
	assert.Equal(t, "2021-05-01 00:00:00 ~ -", p.String())
}
