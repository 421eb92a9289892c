package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dhruvikmodi23/HealingMinds-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

func TestAssessmentErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown question", util.ErrQuestionNotFound, http.StatusBadRequest},
		{"session already completed", util.ErrSessionCompleted, http.StatusBadRequest},
		{"session not found", util.ErrSessionNotFound, http.StatusNotFound},
		{"foreign session", util.ErrPermissionDenied, http.StatusForbidden},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)

		assessmentError(ctx, c.err)
		if w.Code != c.want {
			t.Fatalf("%s: status = %d, want %d", c.name, w.Code, c.want)
		}
	}
}
