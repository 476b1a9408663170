package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
	"task-manager/internal/services"
)

type taskList struct {
	Title string        `json:"title"`
	Tasks []domain.Task `json:"tasks"`
}

type summaryResponse struct {
	Title string `json:"title"`
	services.Summary
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"time": s.svc.Clock.Now().UTC().Format(time.RFC3339),
	})
}

// criteriaFromQuery reads ?q=, ?status= and ?category= into filter criteria
func criteriaFromQuery(r *http.Request) (services.FilterCriteria, error) {
	q := r.URL.Query()
	status, err := services.ParseStatusFilter(q.Get("status"))
	if err != nil {
		return services.FilterCriteria{}, apperrors.NewInvalidInputError("status", q.Get("status"), err.Error())
	}
	criteria := services.FilterCriteria{Query: q.Get("q"), Status: status}

	if raw := strings.TrimSpace(q.Get("category")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return services.FilterCriteria{}, apperrors.NewInvalidInputError("category", raw, "must be a positive integer")
		}
		criteria.CategoryID = &id
	}
	return criteria, nil
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	tasks, categories, err := s.svc.Snapshot(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, taskList{
		Title: services.Title(criteria, categories),
		Tasks: s.svc.Visible(tasks, criteria),
	})
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var in domain.TaskInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	task, err := s.svc.Tasks.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	task, err := s.svc.Tasks.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var patch domain.TaskPatch
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}
	task, err := s.svc.Tasks.Update(r.Context(), id, patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) toggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	current, err := s.svc.Tasks.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	task, err := s.svc.Tasks.ToggleComplete(r.Context(), *current)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.Tasks.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.svc.Categories.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var in domain.CategoryInput
	if err := decodeJSON(r, &in); err != nil {
		s.writeError(w, r, err)
		return
	}
	category, err := s.svc.Categories.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	category, err := s.svc.Categories.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var patch domain.CategoryPatch
	if err := decodeJSON(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}
	category, err := s.svc.Categories.Update(r.Context(), id, patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.svc.Categories.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// summary reports sidebar counts and progress over every task, titled for
// the requested criteria
func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	tasks, categories, err := s.svc.Snapshot(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{
		Title:   services.Title(criteria, categories),
		Summary: s.svc.Summary.Summarize(tasks),
	})
}
