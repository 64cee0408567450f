package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopapi/internal/models"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func (app *application) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.clientError(w, http.StatusBadRequest)
		return
	}

	for _, check := range []struct{ value, message string }{
		{req.Name, "Name is Required"},
		{req.Email, "Email is Required"},
		{req.Password, "Password is Required"},
	} {
		if validate.Var(check.value, "required") != nil {
			app.writeJSON(w, http.StatusBadRequest, map[string]string{"error": check.message})
			return
		}
	}

	user, err := app.users.InsertUser(r.Context(), req.Name, req.Email, req.Password, req.Phone, req.Address)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			app.writeJSON(w, http.StatusOK, map[string]any{
				"success": false,
				"message": "Already Register please login",
			})
			return
		}
		app.opError(w, http.StatusInternalServerError, "Error in Registration", err)
		return
	}

	app.writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "User Register Successfully",
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (app *application) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		app.writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": "Invalid email or password",
		})
		return
	}

	user, err := app.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			app.writeJSON(w, http.StatusNotFound, map[string]any{
				"success": false,
				"message": "Invalid email or password",
			})
			return
		}
		app.opError(w, http.StatusInternalServerError, "Error in login", err)
		return
	}

	token, err := app.newToken(user)
	if err != nil {
		app.opError(w, http.StatusInternalServerError, "Error in login", err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "login successfully",
		"user":    user,
		"token":   token,
	})
}

// authProbe is what the client's protected routes poll; reaching it at all
// means the middleware accepted the token.
func (app *application) authProbe(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
