package api

import (
	"errors"
	"net/http"

	reqdto "hotel-front-desk/internal/handler/dto/request"
	resdto "hotel-front-desk/internal/handler/dto/response"
	"hotel-front-desk/internal/handler/middleware"
	"hotel-front-desk/internal/pkg/config"
	"hotel-front-desk/internal/pkg/cookie"
	"hotel-front-desk/internal/pkg/errs"
	"hotel-front-desk/internal/pkg/jwt"
	"hotel-front-desk/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	cookieCfg    config.CookieConfig
	jwtService   *jwt.Service
}

func NewAuthHandler(authCommands commands.AuthCommands, cookieCfg config.CookieConfig, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		cookieCfg:    cookieCfg,
		jwtService:   jwtService,
	}
}

func (h *AuthHandler) setCookies(c *gin.Context, tokens commands.TokenPair) {
	cookie.SetTokenCookies(c, h.cookieCfg, tokens.AccessToken, tokens.RefreshToken,
		h.jwtService.AccessDuration(), h.jwtService.RefreshDuration())
}

// @Summary Staff portal login
// @Description Login to the front-desk portal with the shared staff password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.StaffLoginRequest true "Staff login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/staff/login [post]
func (h *AuthHandler) StaffLogin(c *gin.Context) {
	var req reqdto.StaffLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.StaffLogin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.setCookies(c, result.Tokens)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Tokens.AccessToken,
		Role:        result.Role.String(),
	})
}

// @Summary Register customer account
// @Description Create a customer portal account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerRegisterRequest true "Registration request"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/customers [post]
func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req reqdto.CustomerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.RegisterCustomer(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email is already registered",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid registration data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cust, err := h.authCommands.GetCustomer(c.Request.Context(), result.SubjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.setCookies(c, result.Tokens)
	c.JSON(http.StatusCreated, resdto.CustomerResponse{
		AccessToken: result.Tokens.AccessToken,
		Customer:    cust,
	})
}

// @Summary Customer login
// @Description Login to the customer portal with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.CustomerLoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/customers/login [post]
func (h *AuthHandler) CustomerLogin(c *gin.Context) {
	var req reqdto.CustomerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.CustomerLogin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.setCookies(c, result.Tokens)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Tokens.AccessToken,
		Role:        result.Role.String(),
	})
}

// @Summary Refresh tokens
// @Description Exchange the refresh token cookie for a new token pair
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Refresh token required",
		})
		return
	}

	tokens, err := h.authCommands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired refresh token",
		})
		return
	}

	h.setCookies(c, *tokens)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: tokens.AccessToken,
	})
}

// @Summary Logout
// @Description Clear session cookies
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current customer
// @Description Get the authenticated customer's account
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CustomerResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	subjectID, ok := middleware.GetSubjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	cust, err := h.authCommands.GetCustomer(c.Request.Context(), subjectID)
	if err != nil {
		if errors.Is(err, errs.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.CustomerResponse{Customer: cust})
}
