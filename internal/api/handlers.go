// Package api exposes the HTTP surface of the exercise log service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/EdDee296/exercise-log-api/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", index).Methods(http.MethodGet)
	r.HandleFunc("/healthz", healthz).Methods(http.MethodGet)
	r.HandleFunc("/api/users", h.listUsers).Methods(http.MethodGet)
	r.HandleFunc("/api/users", h.createUser).Methods(http.MethodPost)
	r.HandleFunc("/api/users/{_id}/exercises", h.addExercise).Methods(http.MethodPost)
	r.HandleFunc("/api/users/{_id}/logs", h.getLog).Methods(http.MethodGet)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]UserView, 0, len(users))
	for _, user := range users {
		out = append(out, toUserView(user))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	req := CreateUserRequest{Username: r.PostFormValue("username")}
	if err := req.Validate(); err != nil {
		writeErrorPayload(w, err.Error())
		return
	}

	user, err := h.service.CreateUser(r.Context(), req.Username)
	if err != nil {
		writeErrorPayload(w, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toUserView(*user))
}

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request) {
	req := AddExerciseRequest{
		Description: r.PostFormValue("description"),
		Duration:    r.PostFormValue("duration"),
		Date:        r.PostFormValue("date"),
	}
	input, err := req.Parse()
	if err != nil {
		writeErrorPayload(w, err.Error())
		return
	}
	input.OwnerID = mux.Vars(r)["_id"]

	logged, err := h.service.AddExercise(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeErrorPayload(w, "User not found")
			return
		}
		writeErrorPayload(w, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ExerciseView{
		Username:    logged.User.Username,
		Description: logged.Exercise.Description,
		Duration:    logged.Exercise.DurationMin,
		ID:          logged.User.ID,
		Date:        domain.FormatLogDate(logged.Exercise.Date),
	})
}

func (h *Handler) getLog(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLogFilter(r)
	if err != nil {
		writeErrorPayload(w, err.Error())
		return
	}

	result, err := h.service.GetLog(r.Context(), mux.Vars(r)["_id"], filter)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			writeErrorPayload(w, "User not found")
			return
		}
		// Store faults on the read path surface as a plain transport failure.
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	entries := make([]LogEntryView, 0, len(result.Entries))
	for _, exercise := range result.Entries {
		entries = append(entries, LogEntryView{
			Description: exercise.Description,
			Duration:    exercise.DurationMin,
			Date:        domain.FormatLogDate(exercise.Date),
		})
	}

	writeJSON(w, http.StatusOK, LogResponse{
		ID:       result.User.ID,
		Username: result.User.Username,
		Count:    len(entries),
		Log:      entries,
	})
}

// CreateUserRequest is the form payload for POST /api/users.
type CreateUserRequest struct {
	Username string
}

// Validate ensures request correctness.
func (r CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return errors.New("username is required")
	}
	return nil
}

// AddExerciseRequest is the raw form payload for POST /api/users/{_id}/exercises.
type AddExerciseRequest struct {
	Description string
	Duration    string
	Date        string
}

// Parse validates the raw fields and converts them into a domain input.
func (r AddExerciseRequest) Parse() (domain.AddExerciseInput, error) {
	if strings.TrimSpace(r.Description) == "" {
		return domain.AddExerciseInput{}, errors.New("description is required")
	}
	if strings.TrimSpace(r.Duration) == "" {
		return domain.AddExerciseInput{}, errors.New("duration is required")
	}
	duration, err := strconv.Atoi(strings.TrimSpace(r.Duration))
	if err != nil {
		return domain.AddExerciseInput{}, errors.New("duration must be a number")
	}

	input := domain.AddExerciseInput{
		Description: r.Description,
		DurationMin: duration,
	}
	if strings.TrimSpace(r.Date) != "" {
		date, err := domain.ParseDate(strings.TrimSpace(r.Date))
		if err != nil {
			return domain.AddExerciseInput{}, errors.New("date must be formatted YYYY-MM-DD")
		}
		input.Date = &date
	}
	return input, nil
}

// parseLogFilter reads from/to/limit query parameters. A non-numeric or
// missing limit applies no cap; it never falls back to a hidden default.
func parseLogFilter(r *http.Request) (domain.LogFilter, error) {
	var filter domain.LogFilter

	query := r.URL.Query()
	if raw := query.Get("from"); raw != "" {
		from, err := domain.ParseDate(raw)
		if err != nil {
			return filter, errors.New("from must be formatted YYYY-MM-DD")
		}
		filter.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := domain.ParseDate(raw)
		if err != nil {
			return filter, errors.New("to must be formatted YYYY-MM-DD")
		}
		filter.To = &to
	}
	if raw := query.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			filter.Limit = parsed
		}
	}
	return filter, nil
}

// UserView is the stored user record as rendered to clients.
type UserView struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// ExerciseView is the response body for a logged exercise. ID carries the
// owner's id, matching the contract clients already depend on.
type ExerciseView struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	ID          string `json:"_id"`
	Date        string `json:"date"`
}

// LogEntryView is a single entry of a user's exercise log.
type LogEntryView struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse packages the filtered log with its owner and entry count.
type LogResponse struct {
	ID       string         `json:"_id"`
	Username string         `json:"username"`
	Count    int            `json:"count"`
	Log      []LogEntryView `json:"log"`
}

func toUserView(user domain.User) UserView {
	return UserView{ID: user.ID, Username: user.Username}
}

// writeErrorPayload reports a failure in the body only. The transport status
// stays 200; clients key off the error field, not the status code.
func writeErrorPayload(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
