package logcat

import (
	"strings"
	"testing"

	"github.com/charliek/colorcat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	p := NewParser()

	t.Run("threadtime line", func(t *testing.T) {
		rec, ok, err := p.Parse("11-06 15:49:43.757   640   640 D dalvikvm: GC freed 9163 objects")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, domain.Record{
			Date:     "11-06",
			Time:     "15:49:43.757",
			PID:      "640",
			TID:      "640",
			Severity: domain.SeverityDebug,
			Tag:      "dalvikvm",
			Sep:      ":",
			Message:  " GC freed 9163 objects",
		}, rec)
	})

	t.Run("padded tag keeps its spaces", func(t *testing.T) {
		rec, ok, err := p.Parse("01-02 03:04:05.678  1234  1250 I ActivityManager : Start proc")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "ActivityManager ", rec.Tag)
		assert.Equal(t, " Start proc", rec.Message)
	})

	t.Run("tag without colon ends at last space", func(t *testing.T) {
		rec, ok, err := p.Parse("01-02 03:04:05.678     1     2 W watchdog stalled for 5s")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "watchdog stalled for", rec.Tag)
		assert.Equal(t, " ", rec.Sep)
		assert.Equal(t, "5s", rec.Message)
	})

	t.Run("tag ending in plus", func(t *testing.T) {
		rec, ok, err := p.Parse("01-02 03:04:05.678     1     2 V tag+")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "tag", rec.Tag)
		assert.Equal(t, "+", rec.Sep)
		assert.Equal(t, "", rec.Message)
	})

	t.Run("message may contain colons", func(t *testing.T) {
		rec, ok, err := p.Parse("01-02 03:04:05.678   100   101 E Net: host: example.com: refused")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Net", rec.Tag)
		assert.Equal(t, " host: example.com: refused", rec.Message)
	})

	t.Run("empty tag", func(t *testing.T) {
		rec, ok, err := p.Parse("01-02 03:04:05.678   100   101 I : no tag")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "", rec.Tag)
		assert.Equal(t, " no tag", rec.Message)
	})
}

func TestParser_Unparsed(t *testing.T) {
	p := NewParser()
	lines := []string{
		"",
		" ",
		"--------- beginning of main",
		"D/dalvikvm(  640): GC freed 9163 objects",
		"11-06 15:49:43   640   640 D dalvikvm: missing millis",
		"11-06 15:49:43.757   abc   640 D dalvikvm: bad pid",
		"11-06 15:49:43.757   640   640 d dalvikvm: lower-case severity",
		"11-06 15:49:43.757   640   640 D dalvikvm",
		"  11-06 15:49:43.757   640   640 D dalvikvm: leading space",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, ok, err := p.Parse(line)
			assert.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestParser_UnknownSeverity(t *testing.T) {
	p := NewParser()
	for _, sev := range []string{"F", "A", "S"} {
		t.Run(sev, func(t *testing.T) {
			rec, ok, err := p.Parse("11-06 15:49:43.757   640   640 " + sev + " libc: Fatal signal 11")
			assert.True(t, ok)
			require.ErrorIs(t, err, domain.ErrUnknownSeverity)
			assert.Contains(t, err.Error(), sev)
			assert.Equal(t, domain.Severity(sev), rec.Severity)
		})
	}
}

func TestParser_Reconstruct(t *testing.T) {
	p := NewParser()
	lines := []string{
		"11-06 15:49:43.757   640   640 D dalvikvm: GC freed 9163 objects / 524384 bytes in 158ms",
		"01-02 03:04:05.678  1234  1250 I ActivityManager : Start proc com.example",
		"01-02 03:04:05.678     1     2 W watchdog stalled for 5s",
		"12-31 23:59:59.999 65535 65535 E AndroidRuntime: FATAL EXCEPTION: main",
		"12-31 23:59:59.999 7 8 V a+b",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			rec, ok, err := p.Parse(line)
			require.NoError(t, err)
			require.True(t, ok)

			header := rec.Date + " " + rec.Time
			require.True(t, strings.HasPrefix(line, header))
			ids := strings.TrimSpace(line[len(header):strings.Index(line, " "+rec.Severity.String()+" ")])
			assert.Equal(t, rec.PID+" "+rec.TID, strings.Join(strings.Fields(ids), " "))

			suffix := line[strings.Index(line, " "+rec.Severity.String()+" ")+3:]
			assert.Equal(t, suffix, rec.Body())
			assert.Len(t, rec.Sep, 1)
		})
	}
}
