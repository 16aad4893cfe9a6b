package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("requests are logged to the configured logger", func(t *testing.T) {
		ctx := createContext(t)
		defer ctx.ctrl.Finish()

		logOutput := new(bytes.Buffer)
		logger := logrus.New()
		logger.SetOutput(logOutput)

		server := New(&Config{PublicURL: "http://localhost:3002", Logger: logger}, ctx.clientMock)

		ctx.clientMock.EXPECT().PublicKey().Return("-----BEGIN PUBLIC KEY-----\n...", nil)
		ctx.clientMock.EXPECT().KeySize().Return(2048)

		recorder := httptest.NewRecorder()
		server.echo.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/public-key", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, logOutput.String(), "/api/public-key")
	})

	t.Run("a panicking handler answers 500 instead of dropping the connection", func(t *testing.T) {
		ctx := createContext(t)
		defer ctx.ctrl.Finish()

		logger := logrus.New()
		logger.SetOutput(new(bytes.Buffer))

		server := New(&Config{PublicURL: "http://localhost:3002", Logger: logger}, ctx.clientMock)

		ctx.clientMock.EXPECT().PublicKey().DoAndReturn(func() (string, error) {
			panic("key store gone")
		})

		recorder := httptest.NewRecorder()
		server.echo.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/public-key", nil))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
