package models

import "github.com/Shashwata32/EcoLeague/storage"

type CreateAreaRequest struct {
	Name string `json:"name"`
}

type RenameAreaRequest struct {
	Name string `json:"name"`
}

type AreaResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Badge string `json:"badge"`
}

func TransformAreaFromStorage(area *storage.Area) AreaResponse {
	return AreaResponse{
		ID:    area.ID,
		Name:  area.Name,
		Score: area.Score,
		Badge: area.Badge,
	}
}
