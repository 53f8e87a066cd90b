package services

import "context"

// TitleFetcher получает заголовок страницы по URL.
type TitleFetcher interface {
	FetchTitle(ctx context.Context, url string) (string, error)
}

// Summarizer составляет короткое описание страницы.
type Summarizer interface {
	Summarize(ctx context.Context, url, title string) (string, error)
}
