package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/dto/request"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/internal/usecase"
	"github.com/VicellesJaylourdE/MARBF-CooperativePH/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/user/profile (protected)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.service.GetProfile(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// GetUsers handles GET /api/admin/users (staff only)
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := request.NewPaginatedRequest(
		utils.ParseInt(query.Get("page"), 1),
		utils.ParseInt(query.Get("per_page"), 10),
	)

	users, err := h.service.GetUsers(r.Context(), &page)
	if err != nil {
		handleServiceError(w, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// RegisterMember handles POST /api/admin/users (staff only)
func (h *UserHandler) RegisterMember(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.RegisterMember(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register member")
		return
	}

	utils.ResponseCreated(w, "success", user)
}

// DeactivateUser handles PUT /api/admin/users/{id}/deactivate (admin only)
func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.service.DeactivateUser(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "deactivate user")
		return
	}

	utils.ResponseSuccess(w, "User deactivated", nil)
}
