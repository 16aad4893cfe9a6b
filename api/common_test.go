package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"

	"github.com/nuts-foundation/doc-signer/mock"
	servicesMock "github.com/nuts-foundation/doc-signer/mock/services"
)

type TestContext struct {
	ctrl           *gomock.Controller
	clientMock     *mock.MockDocSignerClient
	sessionMock    *servicesMock.MockSessionStore
	disclosureMock *servicesMock.MockDisclosureService
	notaryMock     *servicesMock.MockDocumentNotary
	wrapper        Wrapper
}

func createContext(t *testing.T) TestContext {
	t.Helper()
	ctrl := gomock.NewController(t)
	clientMock := mock.NewMockDocSignerClient(ctrl)
	sessionMock := servicesMock.NewMockSessionStore(ctrl)
	disclosureMock := servicesMock.NewMockDisclosureService(ctrl)
	notaryMock := servicesMock.NewMockDocumentNotary(ctrl)

	clientMock.EXPECT().SessionStore().Return(sessionMock).AnyTimes()
	clientMock.EXPECT().Disclosure().Return(disclosureMock).AnyTimes()
	clientMock.EXPECT().Notary().Return(notaryMock).AnyTimes()

	return TestContext{
		ctrl:           ctrl,
		clientMock:     clientMock,
		sessionMock:    sessionMock,
		disclosureMock: disclosureMock,
		notaryMock:     notaryMock,
		wrapper:        Wrapper{DocSigner: clientMock, PublicURL: "http://localhost:3002"},
	}
}

// echoContext builds an echo context around the given request and returns the recorder the
// response is written to
func echoContext(request *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	return echo.New().NewContext(request, recorder), recorder
}

func getRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/", nil)
}

func postRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodPost, target, nil)
}

// multipartRequest builds a document upload request the way a browser form submit would
func multipartRequest(t *testing.T, sessionToken string, fileName string, document []byte) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	if sessionToken != "" {
		if err := writer.WriteField("sessionToken", sessionToken); err != nil {
			t.Fatal(err)
		}
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("document", fileName)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write(document); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	request := httptest.NewRequest(http.MethodPost, "/api/documents/sign", body)
	request.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return request
}

func decodeResponse(t *testing.T, body io.Reader, target interface{}) {
	t.Helper()
	if err := json.NewDecoder(body).Decode(target); err != nil {
		t.Fatal(err)
	}
}
