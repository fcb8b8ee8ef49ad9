package api

import (
	"fmt"

	sharedmodels "github.com/IvanChernomyrdin/go-notes-keeper/internal/shared/models"
)

// NoteRequest описывает тело запроса создания/обновления заметки.
//
// Title и Content передаются в JSON формате в эндпоинты /notes и /notes/{id}.
type NoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListNotes загружает все заметки пользователя с сервера.
//
// Выполняет запрос:
//
//	GET /notes
//
// Сервер возвращает массив заметок, отсортированный от новых к старым.
func (c *Client) ListNotes(accessToken string) ([]sharedmodels.Note, error) {
	var resp []sharedmodels.Note
	err := c.GetJSON("/notes", &resp, accessToken)
	return resp, err
}

// GetNote загружает одну заметку по ID.
//
// Выполняет запрос:
//
//	GET /notes/{id}
//
// Сервер отвечает 403, если заметка принадлежит другому пользователю,
// и 404, если заметка не найдена.
func (c *Client) GetNote(accessToken, id string) (sharedmodels.Note, error) {
	var resp sharedmodels.Note
	err := c.GetJSON(fmt.Sprintf("/notes/%s", id), &resp, accessToken)
	return resp, err
}

// CreateNote создаёт новую заметку на сервере.
//
// Выполняет запрос:
//
//	POST /notes
//
// Возвращает созданную заметку (ID, timestamps и др.).
func (c *Client) CreateNote(accessToken, title, content string) (sharedmodels.Note, error) {
	var resp sharedmodels.Note
	err := c.PostJSON("/notes", NoteRequest{Title: title, Content: content}, &resp, accessToken)
	return resp, err
}

// UpdateNote обновляет существующую заметку на сервере по ID.
//
// Выполняет запрос:
//
//	PUT /notes/{id}
//
// Сервер возвращает обновлённую заметку.
func (c *Client) UpdateNote(accessToken, id, title, content string) (sharedmodels.Note, error) {
	var resp sharedmodels.Note
	err := c.PutJSON(fmt.Sprintf("/notes/%s", id), NoteRequest{Title: title, Content: content}, &resp, accessToken)
	return resp, err
}

// DeleteNote удаляет заметку на сервере по ID.
//
// Выполняет запрос:
//
//	DELETE /notes/{id}
//
// Возвращает сообщение об успешном удалении.
func (c *Client) DeleteNote(accessToken, id string) (sharedmodels.MessageResponse, error) {
	var resp sharedmodels.MessageResponse
	err := c.DeleteJSON(fmt.Sprintf("/notes/%s", id), &resp, accessToken)
	return resp, err
}
