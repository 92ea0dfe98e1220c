package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yashcodes29/Farm-wise/pkg/plan/serviceImp"
	"github.com/yashcodes29/Farm-wise/pkg/plan/types"
)

func postResources(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	ctrl := NewPlanCtrl(serviceImp.NewPlanService())
	e.POST("/api/resources", ctrl.Generate)

	req := httptest.NewRequest(http.MethodPost, "/api/resources", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGenerateEndToEnd(t *testing.T) {
	rec := postResources(t, `{
		"crop": "Wheat",
		"location": "Punjab",
		"startDate": "2024-01-01",
		"resources": ["Water Usage", "Fertilizer"]
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Plan []types.PlanEntry `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Plan, 12)

	for _, entry := range resp.Plan {
		require.Len(t, entry.Recommendations, 2)
		assert.EqualValues(t, "Water Usage", entry.Recommendations[0].Resource)
		assert.EqualValues(t, "Fertilizer", entry.Recommendations[1].Resource)
	}
}

func TestGenerateInvalidInput(t *testing.T) {
	cases := map[string]string{
		"crop with digits": `{"crop":"Wheat123","location":"Punjab","startDate":"2024-01-01","resources":["Fertilizer"]}`,
		"empty resources":  `{"crop":"Wheat","location":"Punjab","startDate":"2024-01-01","resources":[]}`,
		"bad date shape":   `{"crop":"Wheat","location":"Punjab","startDate":"2024/01/01","resources":["Fertilizer"]}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := postResources(t, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Invalid input")
		})
	}
}
