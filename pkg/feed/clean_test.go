package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "Monaco Grand Prix", "Monaco Grand Prix"},
		{"trim", "  \n Monaco \t", "Monaco"},
		{"tags", "<p>Hello <a href=\"x\">world</a></p>", "Hello world"},
		{"self closing", "line<br/>break", "linebreak"},
		{"amp", "Rock &amp; Roll", "Rock & Roll"},
		{"lt gt", "a &lt; b &gt; c", "a < b > c"},
		{"quotes", "&quot;quoted&quot; and it&#39;s", `"quoted" and it's`},
		{"nbsp", "non&nbsp;breaking", "non breaking"},
		{"nbsp at edges", "&nbsp;edge&nbsp;", "edge"},
		{"escaped tag survives", "&lt;b&gt;bold&lt;/b&gt;", "<b>bold</b>"},
		{"amp decoded first", "&amp;lt;", "<"},
		{"other entities untouched", "&copy; &#8217;", "&copy; &#8217;"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestClean_IdempotentOnCleanText(t *testing.T) {
	for _, s := range []string{"Hamilton wins at Silverstone", "Q3: 1:26.204", "it's 50/50", `"quoted"`} {
		once := Clean(s)
		assert.Equal(t, s, once)
		assert.Equal(t, once, Clean(once))
	}
}
