package videourl

import "regexp"

const (
	TypeYouTube = "youtube"
	TypeVimeo   = "vimeo"
)

type Video struct {
	Type         string
	ID           string
	ThumbnailURL string
}

var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?(?:[^&\s]*&)*v=([A-Za-z0-9_-]{6,})`),
	regexp.MustCompile(`(?:https?://)?youtu\.be/([A-Za-z0-9_-]{6,})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([A-Za-z0-9_-]{6,})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/([A-Za-z0-9_-]{6,})`),
}

var vimeoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?vimeo\.com/(\d+)`),
	regexp.MustCompile(`(?:https?://)?player\.vimeo\.com/video/(\d+)`),
}

// Parse определяет провайдера вставленной ссылки и извлекает ID ролика.
// Паттерны проверяются по порядку, побеждает первое совпадение.
// Если ссылка не распознана, возвращается пустая структура —
// вызывающий код обязан считать это ошибкой валидации.
func Parse(rawURL string) Video {
	if rawURL == "" {
		return Video{}
	}

	for _, pattern := range youtubePatterns {
		if match := pattern.FindStringSubmatch(rawURL); match != nil {
			return Video{
				Type:         TypeYouTube,
				ID:           match[1],
				ThumbnailURL: "https://img.youtube.com/vi/" + match[1] + "/maxresdefault.jpg",
			}
		}
	}

	for _, pattern := range vimeoPatterns {
		if match := pattern.FindStringSubmatch(rawURL); match != nil {
			return Video{
				Type: TypeVimeo,
				ID:   match[1],
			}
		}
	}

	return Video{}
}
