package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/mygroup/simple-community/internal/application"
	"github.com/mygroup/simple-community/internal/interface/middleware"
	"github.com/mygroup/simple-community/pkg/apperr"
	"github.com/mygroup/simple-community/pkg/response"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// userRequest covers every user endpoint body. Fields are pointers because
// the services distinguish "absent" from "empty" for their fixed-order
// presence checks.
type userRequest struct {
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	NewPassword    *string `json:"newPassword"`
	RepeatPassword *string `json:"repeatPassword"`
}

func bindJSON(c *gin.Context, logger *logrus.Logger, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Err(c, logger, apperr.New(apperr.MissingMandatoryProperty, "Property is null"))
		return false
	}
	return true
}

// Signup POST /api/v1/users/signup
func (h *UserHandler) Signup(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	if err := h.Svc.Signup(userapp.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	}); err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{})
}

// Login POST /api/v1/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	token, err := h.Svc.Login(userapp.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// FindEmail GET /api/v1/users/find-email
func (h *UserHandler) FindEmail(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	email, err := h.Svc.FindEmailByNameAndPhone(req.Name, req.Phone)
	if err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}

// ConfirmAccount GET /api/v1/users/find-pw
func (h *UserHandler) ConfirmAccount(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	email, err := h.Svc.FindEmailByEmailAndPhone(req.Email, req.Phone)
	if err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}

// ResetPassword PUT /api/v1/users/find-pw
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req userRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}
	if err := h.Svc.ModifyPasswordByEmail(userapp.PasswordResetInput{
		Email:          req.Email,
		Password:       req.Password,
		NewPassword:    req.NewPassword,
		RepeatPassword: req.RepeatPassword,
	}); err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{})
}

// Modify PUT /api/v1/users (authenticated). A body carrying password fields
// is a password reset; a body carrying a name is a profile update.
func (h *UserHandler) Modify(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req userRequest
	if !bindJSON(c, h.Logger, &req) {
		return
	}

	var err error
	switch {
	case req.Password != nil:
		err = h.Svc.ModifyPasswordByID(uid, req.NewPassword)
	case req.Name != nil:
		err = h.Svc.ModifyProfile(uid, req.Name, req.Phone)
	default:
		err = apperr.New(apperr.MissingMandatoryProperty, "Property is null")
	}
	if err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{})
}

// Remove DELETE /api/v1/users (authenticated)
func (h *UserHandler) Remove(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	if err := h.Svc.Remove(uid); err != nil {
		response.Err(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}
