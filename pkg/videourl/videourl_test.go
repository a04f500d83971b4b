package videourl

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		url           string
		wantType      string
		wantID        string
		wantThumbnail string
	}{
		{
			name:          "short youtube link",
			url:           "https://youtu.be/abc123",
			wantType:      TypeYouTube,
			wantID:        "abc123",
			wantThumbnail: "https://img.youtube.com/vi/abc123/maxresdefault.jpg",
		},
		{
			name:          "youtube watch link",
			url:           "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantType:      TypeYouTube,
			wantID:        "dQw4w9WgXcQ",
			wantThumbnail: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name:          "youtube watch link with extra params",
			url:           "https://www.youtube.com/watch?list=PL123456&v=dQw4w9WgXcQ",
			wantType:      TypeYouTube,
			wantID:        "dQw4w9WgXcQ",
			wantThumbnail: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name:          "youtube embed link",
			url:           "https://www.youtube.com/embed/dQw4w9WgXcQ",
			wantType:      TypeYouTube,
			wantID:        "dQw4w9WgXcQ",
			wantThumbnail: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name:          "youtube shorts link",
			url:           "https://youtube.com/shorts/dQw4w9WgXcQ",
			wantType:      TypeYouTube,
			wantID:        "dQw4w9WgXcQ",
			wantThumbnail: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name:     "vimeo link",
			url:      "https://vimeo.com/987654",
			wantType: TypeVimeo,
			wantID:   "987654",
		},
		{
			name:     "vimeo player link",
			url:      "https://player.vimeo.com/video/987654",
			wantType: TypeVimeo,
			wantID:   "987654",
		},
		{
			name: "unknown provider",
			url:  "https://example.com/video",
		},
		{
			name: "empty url",
			url:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.url)
			if got.Type != tt.wantType {
				t.Errorf("Parse(%q).Type = %q, want %q", tt.url, got.Type, tt.wantType)
			}
			if got.ID != tt.wantID {
				t.Errorf("Parse(%q).ID = %q, want %q", tt.url, got.ID, tt.wantID)
			}
			if got.ThumbnailURL != tt.wantThumbnail {
				t.Errorf("Parse(%q).ThumbnailURL = %q, want %q", tt.url, got.ThumbnailURL, tt.wantThumbnail)
			}
		})
	}
}
