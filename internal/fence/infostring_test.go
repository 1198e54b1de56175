package fence

import "testing"

// ---------------------------------------------------------------------------
// TestParseInfo - Language and Caption Extraction
// ---------------------------------------------------------------------------

func TestParseInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		info           string
		wantLanguage   string
		wantCaption    string
		wantHasCaption bool
	}{
		{
			name: "empty info string",
			info: "",
		},
		{
			name: "whitespace only",
			info: "   \t ",
		},
		{
			name:         "language only",
			info:         "ruby",
			wantLanguage: "ruby",
		},
		{
			name:         "surrounding whitespace is trimmed",
			info:         "  go  ",
			wantLanguage: "go",
		},
		{
			name:           "language and caption",
			info:           "ruby caption=X",
			wantLanguage:   "ruby",
			wantCaption:    "X",
			wantHasCaption: true,
		},
		{
			name:           "caption stays percent-encoded",
			info:           "ruby caption=See%20[link](url)",
			wantLanguage:   "ruby",
			wantCaption:    "See%20[link](url)",
			wantHasCaption: true,
		},
		{
			name:           "caption ends at ampersand",
			info:           "python caption=Hello&nohl",
			wantLanguage:   "python",
			wantCaption:    "Hello",
			wantHasCaption: true,
		},
		{
			name:           "caption after another parameter",
			info:           "go nohl&caption=Later",
			wantLanguage:   "go",
			wantCaption:    "Later",
			wantHasCaption: true,
		},
		{
			name:           "caption with spaces runs to end",
			info:           "sh caption=two words",
			wantLanguage:   "sh",
			wantCaption:    "two words",
			wantHasCaption: true,
		},
		{
			name:           "empty caption value is present",
			info:           "sh caption=",
			wantLanguage:   "sh",
			wantCaption:    "",
			wantHasCaption: true,
		},
		{
			name:           "first token is always the language",
			info:           "caption=Alone",
			wantLanguage:   "caption=Alone",
			wantCaption:    "Alone",
			wantHasCaption: true,
		},
		{
			name:         "no caption key",
			info:         "js title=foo",
			wantLanguage: "js",
		},
		{
			name:           "query separator after language",
			info:           "ruby?caption=foo",
			wantLanguage:   "ruby",
			wantCaption:    "foo",
			wantHasCaption: true,
		},
		{
			name:           "query separator with trailing parameter",
			info:           "ruby?caption=A%20b&nohl",
			wantLanguage:   "ruby",
			wantCaption:    "A%20b",
			wantHasCaption: true,
		},
		{
			name:           "question mark inside caption kept",
			info:           "sh caption=why?",
			wantLanguage:   "sh",
			wantCaption:    "why?",
			wantHasCaption: true,
		},
		{
			name:           "query separator without language",
			info:           "?caption=Bare",
			wantLanguage:   "",
			wantCaption:    "Bare",
			wantHasCaption: true,
		},
		{
			name:           "tab separates language",
			info:           "c\tcaption=Tab",
			wantLanguage:   "c",
			wantCaption:    "Tab",
			wantHasCaption: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseInfo(tt.info)

			if got.Language != tt.wantLanguage {
				t.Errorf("Language = %q, want %q", got.Language, tt.wantLanguage)
			}
			if got.HasCaption != tt.wantHasCaption {
				t.Errorf("HasCaption = %v, want %v", got.HasCaption, tt.wantHasCaption)
			}
			if got.Caption != tt.wantCaption {
				t.Errorf("Caption = %q, want %q", got.Caption, tt.wantCaption)
			}
		})
	}
}

func TestParseInfo_LangCaptionProperty(t *testing.T) {
	t.Parallel()

	langs := []string{"ruby", "go", "c++", "objective-c", "x"}
	captions := []string{"X", "A%20caption", "*emph*", "[l](u)", "100%", "a=b"}

	for _, lang := range langs {
		for _, caption := range captions {
			got := ParseInfo(lang + " caption=" + caption)
			if got.Language != lang {
				t.Errorf("ParseInfo(%q).Language = %q, want %q", lang+" caption="+caption, got.Language, lang)
			}
			if !got.HasCaption || got.Caption != caption {
				t.Errorf("ParseInfo(%q).Caption = %q (present=%v), want %q",
					lang+" caption="+caption, got.Caption, got.HasCaption, caption)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestParseInfo_Params - Parameter Parsing
// ---------------------------------------------------------------------------

func TestParseInfo_Params(t *testing.T) {
	t.Parallel()

	got := ParseInfo("go nohl&caption=C&highlight=false&&=orphan&nohl=again")

	if len(got.Params) != 3 {
		t.Fatalf("Params = %v, want 3 entries", got.Params)
	}
	if v, ok := got.Params["nohl"]; !ok || v != "" {
		t.Errorf("Params[nohl] = %q (present=%v), want empty first value", v, ok)
	}
	if got.Params["caption"] != "C" {
		t.Errorf("Params[caption] = %q, want %q", got.Params["caption"], "C")
	}
	if got.Params["highlight"] != "false" {
		t.Errorf("Params[highlight] = %q, want %q", got.Params["highlight"], "false")
	}
}

func TestInfo_NoHighlight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		info string
		want bool
	}{
		{"go", false},
		{"go nohl", true},
		{"go caption=x&nohl", true},
		{"ruby?caption=x&nohl", true},
		{"go highlight=false", true},
		{"go highlight=FALSE", true},
		{"go highlight=true", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.info, func(t *testing.T) {
			t.Parallel()

			if got := ParseInfo(tt.info).NoHighlight(); got != tt.want {
				t.Errorf("ParseInfo(%q).NoHighlight() = %v, want %v", tt.info, got, tt.want)
			}
		})
	}
}
