package sandbox

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/medhistory/medhistory/core"
	"github.com/medhistory/medhistory/core/user"
)

type handlers struct {
	store  *Store
	logger core.Logger
}

func registerRoutes(app *echo.Echo, jwt echo.MiddlewareFunc, store *Store, logger core.Logger) {
	h := handlers{store: store, logger: logger}

	// un-authed endpoints
	app.POST("/login", h.login)
	app.POST("/email", h.sendEmail)

	// authed endpoints
	g := app.Group("", jwt)
	admin := roleMiddleware(user.RoleAdmin)

	g.POST("/register", h.createUser, admin)
	g.GET("/users", h.queryUsers, admin)
	g.POST("/users", h.createUser, admin)
	g.DELETE("/user/:id", h.destroyUser, admin)
	g.GET("/doctors", h.queryDoctors)

	g.POST("/generate-document", h.generateDocument, roleMiddleware(user.RoleStudent, user.RoleAdmin))
	g.GET("/documents/doctor/:id", h.doctorDocuments, roleMiddleware(user.RoleDoctor, user.RoleAdmin))
	g.GET("/documents/student/:id", h.studentDocuments, roleMiddleware(user.RoleStudent, user.RoleAdmin))
	g.GET("/documents/notes/:id", h.documentNotes)
	g.POST("/documents/grade/:id", h.gradeDocument, roleMiddleware(user.RoleDoctor, user.RoleAdmin))

	g.GET("/notifications", h.queryNotifications)
	g.PUT("/notifications/:id", h.readNotification)
}

// Handlers

func (h *handlers) login(ctx echo.Context) error {
	var creds user.Credentials
	if err := ctx.Bind(&creds); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := creds.Validate(); err != nil {
		return err
	}

	usr, err := authenticate(creds.Email, creds.Password, h.store)
	if err != nil {
		return errors.Wrap(err, "authenticating")
	}
	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	return ctx.JSON(http.StatusOK, echo.Map{"token": token, "user": usr})
}

func (h *handlers) createUser(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := h.store.CreateUser(data)
	if err != nil {
		return errors.Wrap(err, "creating user")
	}
	return ctx.JSON(http.StatusCreated, usr)
}

func (h *handlers) queryUsers(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, h.store.Users())
}

func (h *handlers) queryDoctors(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, h.store.Doctors())
}

func (h *handlers) destroyUser(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}

	// ctxUser cannot delete themselves
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	if id == claims.ID {
		return errHttpForbidden
	}

	if err := h.store.DeleteUser(id); err != nil {
		if errors.Cause(err) == ErrUserNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deleting user")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (h *handlers) sendEmail(ctx echo.Context) error {
	var msg core.ContactMessage
	if err := ctx.Bind(&msg); err != nil {
		return errors.Wrap(err, "binding to ContactMessage")
	}
	if err := msg.Validate(); err != nil {
		return err
	}

	// no real mail in the sandbox; the log line is the delivery
	h.logger.Info("contact mail relayed", msg)
	return ctx.JSON(http.StatusOK, echo.Map{"message": "email sent"})
}
