package controllers

import (
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/mangamart/app/services"
	"github.com/shashiranjanraj/mangamart/pkg/bind"
	"github.com/shashiranjanraj/mangamart/pkg/response"
)

type CharacterController struct {
	service *services.CharacterService
}

func NewCharacterController(service *services.CharacterService) *CharacterController {
	return &CharacterController{service: service}
}

// Lookup handles POST /get-characters: {"manga_name": "..."} in,
// {"characters": "..."} out. The title is forwarded verbatim; an empty
// one is the caller's problem, not ours.
func (c *CharacterController) Lookup(w http.ResponseWriter, r *http.Request) {
	var in struct {
		MangaName string `json:"manga_name"`
	}

	if _, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusInternalServerError,
			fmt.Sprintf("An unexpected error occurred: %v", err))
		return
	}

	text, err := c.service.Lookup(r.Context(), in.MangaName)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, map[string]string{"characters": text})
}
