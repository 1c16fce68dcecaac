// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
	"github.com/taibuivan/bookshelf/internal/platform/respond"
)

type createdResponse struct {
	BookID string `json:"bookId"`
}

type listResponse struct {
	Books []Summary `json:"books"`
}

type bookResponse struct {
	Book *Book `json:"book"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /books sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createBook)
	router.Get("/", handler.listBooks)
	router.Get("/{"+ParamBookID+"}", handler.getBook)
	router.Put("/{"+ParamBookID+"}", handler.updateBook)
	router.Delete("/{"+ParamBookID+"}", handler.deleteBook)

	return router
}

func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, apperr.Annotate(err, MsgCreateFailed))
		return
	}

	bookID, err := handler.service.CreateBook(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, apperr.Annotate(err, MsgCreateFailed))
		return
	}

	respond.Created(writer, MsgCreated, createdResponse{BookID: bookID})
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	reading, err := requestutil.OptionalBool(request, ParamReading)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	finished, err := requestutil.OptionalBool(request, ParamFinished)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Name:     request.URL.Query().Get(ParamName),
		Reading:  reading,
		Finished: finished,
	}

	books, err := handler.service.ListBooks(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, listResponse{Books: books})
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	b, err := handler.service.GetBook(request.Context(), requestutil.Param(request, ParamBookID))
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			err = apperr.NotFound("Buku")
		}
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookResponse{Book: b})
}

func (handler *Handler) updateBook(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, apperr.Annotate(err, MsgUpdateFailed))
		return
	}

	bookID := requestutil.Param(request, ParamBookID)
	if err := handler.service.UpdateBook(request.Context(), bookID, input); err != nil {
		respond.Error(writer, request, apperr.Annotate(err, MsgUpdateFailed))
		return
	}

	respond.Message(writer, MsgUpdated)
}

func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID := requestutil.Param(request, ParamBookID)
	if err := handler.service.DeleteBook(request.Context(), bookID); err != nil {
		respond.Error(writer, request, apperr.Annotate(err, MsgDeleteFailed))
		return
	}

	respond.Message(writer, MsgDeleted)
}
