package api

import (
	"github.com/vlctrack/vlctrack/history"
	"github.com/vlctrack/vlctrack/player"
	"github.com/vlctrack/vlctrack/progress"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type StatusResponse struct {
	State      string         `json:"state"`
	NowPlaying *NowPlayingDTO `json:"now_playing"`
}

type NowPlayingDTO struct {
	File      string `json:"file"`
	Name      string `json:"name"`
	State     string `json:"state"`
	Position  int    `json:"position"`
	Length    int    `json:"length"`
	Timestamp string `json:"timestamp"`
	Watched   bool   `json:"watched"`
	Display   string `json:"display"`
}

type HistoryResponse struct {
	Entries []HistoryEntryDTO `json:"entries"`
	Total   int               `json:"total"`
}

type HistoryEntryDTO struct {
	File      string `json:"file"`
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	Watched   bool   `json:"watched"`
	Length    int    `json:"length"`
	Level     string `json:"level"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
}

func toNowPlayingDTO(s player.Status) *NowPlayingDTO {
	return &NowPlayingDTO{
		File:      s.File,
		Name:      s.Name(),
		State:     string(s.State),
		Position:  s.Position,
		Length:    s.Length,
		Timestamp: progress.Timestamp(s.Position),
		Watched:   progress.IsWatched(s.Position, s.Length),
		Display:   s.String(),
	}
}

func toHistoryEntryDTO(e history.Entry) HistoryEntryDTO {
	return HistoryEntryDTO{
		File:      e.File,
		Name:      e.Name(),
		Timestamp: e.Timestamp,
		Watched:   e.Watched,
		Length:    e.Length,
		Level:     e.Level().String(),
	}
}
