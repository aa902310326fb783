package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"uiagate/internal/delivery/api/validator"
	"uiagate/internal/domain/entity"
	domainerrors "uiagate/internal/domain/errors"
	mockUsecase "uiagate/internal/mocks/usecase"
	"uiagate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type uiaHandlerFixtures struct {
	handler *UIAHandler
	uiaUC   *mockUsecase.MockUIAUsecase
	echo    *echo.Echo
}

func createTestUIAHandler(t *testing.T) uiaHandlerFixtures {
	uiaUC := mockUsecase.NewMockUIAUsecase(t)
	e := echo.New()
	e.Validator = validator.New()

	h := NewUIAHandler(UIAHandlerParams{
		UIAUC:  uiaUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return uiaHandlerFixtures{handler: h, uiaUC: uiaUC, echo: e}
}

func (fx uiaHandlerFixtures) context(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return fx.echo.NewContext(req, rec), rec
}

func TestUIAHandler_Gate(t *testing.T) {
	route := entity.Route{Method: http.MethodPost, Path: "/register", Flows: []entity.Flow{{Stages: []string{entity.StageDummy}}}}

	t.Run("challenge", func(t *testing.T) {
		fx := createTestUIAHandler(t)
		fx.uiaUC.EXPECT().
			Handle(mock.Anything, &usecase.HandleInput{Route: route, Body: []byte(`{}`)}).
			Return(&usecase.HandleOutput{
				SessionID: "s1",
				Challenge: &entity.Challenge{Flows: route.Flows, Session: "s1"},
			}, nil)

		c, rec := fx.context(http.MethodPost, "/register", `{}`)
		require.NoError(t, fx.handler.Gate(route)(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"flows":[{"stages":["m.login.dummy"]}],"session":"s1"}`, rec.Body.String())
	})

	t.Run("complete", func(t *testing.T) {
		fx := createTestUIAHandler(t)
		fx.uiaUC.EXPECT().Handle(mock.Anything, mock.Anything).Return(&usecase.HandleOutput{
			SessionID: "s1",
			Complete:  true,
			Flow:      route.Flows[0],
			Completed: []string{entity.StageDummy},
		}, nil)

		c, rec := fx.context(http.MethodPost, "/register", `{"auth":{"type":"m.login.dummy","session":"s1"}}`)
		require.NoError(t, fx.handler.Gate(route)(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"session":"s1","completed":["m.login.dummy"],"flow":{"stages":["m.login.dummy"]}}`, rec.Body.String())
	})

	t.Run("pending username carries retry", func(t *testing.T) {
		fx := createTestUIAHandler(t)
		fx.uiaUC.EXPECT().Handle(mock.Anything, mock.Anything).Return(nil, domainerrors.NewPendingError(90*time.Second))

		c, rec := fx.context(http.MethodPost, "/register", `{}`)
		require.NoError(t, fx.handler.Gate(route)(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"errcode":"M_INVALID_USERNAME","error":"Username is pending. Try again in 90 seconds.","retry_after_ms":90000}`, rec.Body.String())
	})
}

func TestUIAHandler_Finish(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestUIAHandler(t)
		fx.uiaUC.EXPECT().
			Finish(mock.Anything, &usecase.FinishInput{SessionID: "s1", UserID: "@alice:example.org", Kind: usecase.FinishEnrolled}).
			Return(nil)

		c, rec := fx.context(http.MethodPost, "/_uia/finish", `{"session":"s1","user_id":"@alice:example.org","kind":"enrolled"}`)
		require.NoError(t, fx.handler.Finish(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})

	t.Run("validation", func(t *testing.T) {
		fx := createTestUIAHandler(t)

		c, rec := fx.context(http.MethodPost, "/_uia/finish", `{"session":"s1","user_id":"@alice:example.org","kind":"deleted"}`)
		require.NoError(t, fx.handler.Finish(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.CodeInvalidParam)
	})

	t.Run("malformed", func(t *testing.T) {
		fx := createTestUIAHandler(t)

		c, rec := fx.context(http.MethodPost, "/_uia/finish", `{"session":`)
		require.NoError(t, fx.handler.Finish(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.CodeBadJSON)
	})

	t.Run("session without a satisfied flow", func(t *testing.T) {
		fx := createTestUIAHandler(t)
		fx.uiaUC.EXPECT().Finish(mock.Anything, mock.Anything).
			Return(domainerrors.ErrForbidden.WithMessage("UIA session has not completed any flow"))

		c, rec := fx.context(http.MethodPost, "/_uia/finish", `{"session":"s1","user_id":"@alice:example.org","kind":"enrolled"}`)
		require.NoError(t, fx.handler.Finish(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"errcode":"M_FORBIDDEN","error":"UIA session has not completed any flow"}`, rec.Body.String())
	})

	t.Run("reservation lost", func(t *testing.T) {
		fx := createTestUIAHandler(t)
		fx.uiaUC.EXPECT().Finish(mock.Anything, mock.Anything).Return(domainerrors.ErrReservationLost)

		c, rec := fx.context(http.MethodPost, "/_uia/finish", `{"session":"s1","user_id":"@alice:example.org","kind":"enrolled"}`)
		require.NoError(t, fx.handler.Finish(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.CodeUserInUse)
	})
}

func TestUIAHandler_Unenroll(t *testing.T) {
	fx := createTestUIAHandler(t)
	fx.uiaUC.EXPECT().Unenroll(mock.Anything, "@alice:example.org").Return(nil)

	c, rec := fx.context(http.MethodDelete, "/", "")
	c.SetParamNames("user_id")
	c.SetParamValues("%40alice%3Aexample.org")
	require.NoError(t, fx.handler.Unenroll(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
