package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "돼지고기, 우유", "돼지고기, 우유"},
		{"inline tags", "<b>원재료명</b>: 밀가루, <span>우유</span>", "원재료명: 밀가루, 우유"},
		{"block tags become spaces", "<p>밀가루</p><p>설탕</p>", "밀가루 설탕"},
		{"br", "대두<br>밀<br/>우유", "대두 밀 우유"},
		{"table cells", "<table><tr><td>원재료</td><td>돼지고기</td></tr></table>", "원재료 돼지고기"},
		{"newlines and runs of spaces", "  돼지고기,\n\n   우유\t 함유  ", "돼지고기, 우유 함유"},
		{"entities", "우유&amp;버터 &nbsp;치즈", "우유&버터 치즈"},
		{"comments dropped", "<!-- note -->새우", "새우"},
		{"unclosed tags", "<div><span>계란", "계란"},
		{"decomposed hangul composed", norm.NFD.String("우유"), "우유"},
		{"escaped markup stripped too", "&lt;b&gt;우유&lt;/b&gt;", "우유"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

// deeplyEscaped hides a <b> tag behind 20 rounds of &amp; escaping
var deeplyEscaped = "&" + strings.Repeat("amp;", 20) + "lt;b&" + strings.Repeat("amp;", 20) + "gt;우유"

func TestNormalize_DeeplyEscapedMarkup(t *testing.T) {
	assert.Equal(t, "우유", Normalize(deeplyEscaped))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"<p>밀가루</p><p>설탕</p>",
		"&lt;b&gt;우유&lt;/b&gt;",
		"&amp;lt;i&amp;gt;치즈",
		"<<>>",
		"a < b > c",
		"<p class='x",
		"<script>var x = '<b>';</script>닭고기",
		"   \n\t  ",
		norm.NFD.String("<li>계란</li><li>새우</li>"),
		"<div>" + strings.Repeat("우유 ", 100) + "</div>",
		deeplyEscaped,
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_MalformedNeverPanics(t *testing.T) {
	inputs := []string{
		"<",
		">",
		"</",
		"<!",
		"<!--",
		"<a href=\"",
		"&#",
		"&#x110000;",
		"<\x00>",
		"\xff\xfe<b>",
		strings.Repeat("<div>", 1000),
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() { _ = Normalize(in) }, "input %q", in)
	}
}

func TestNormalize_OversizedTokenFallsBackToRegex(t *testing.T) {
	attr := strings.Repeat("x", maxTokenBytes+1)
	input := `<span title="` + attr + `">우유</span> 함유`

	_, err := stripTags(input)
	assert.Error(t, err)
	assert.Equal(t, "우유 함유", Normalize(input))
}
