package handlers_test

import (
	"net/http"
	"testing"
	"time"

	gorillaWS "github.com/gorilla/websocket"
	"github.com/shubham56-h/Trackify/internal/live"
	"github.com/shubham56-h/Trackify/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveHandler_StreamsWorkoutEvents(t *testing.T) {
	ts := testutil.NewTestServer(t)
	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	_, otherToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	split := testutil.NewSplitBuilder().WithOwner(user).WithDays("Push", "Pull").Build(t, ts.DB.DB)
	testutil.Assign(t, ts.DB.DB, user, split, 0)

	ws := testutil.NewWSClient(t, ts.LiveURL(token))
	bystander := testutil.NewWSClient(t, ts.LiveURL(otherToken))
	require.Eventually(t, func() bool { return ts.Hub.ClientCount(user.ID) == 1 }, time.Second, 10*time.Millisecond)

	startWorkout(t, ts, token, http.StatusCreated)
	ws.ExpectMessage(live.EventSessionStarted, 2*time.Second)

	addSet(t, ts, token, map[string]interface{}{"exercise_name": "Dips", "reps": 12, "weight": 0})
	var set struct {
		ExerciseName string `json:"exercise_name"`
		SetNumber    int    `json:"set_number"`
	}
	ws.ExpectPayload(live.EventSetAdded, &set, 2*time.Second)
	assert.Equal(t, "Dips", set.ExerciseName)
	assert.Equal(t, 1, set.SetNumber)

	finish := testutil.Do(t, http.MethodPost, ts.APIURL("/today/finish"), nil, token)
	testutil.AssertStatusCode(t, finish, http.StatusOK)
	var finished struct {
		NextDayName string `json:"next_day_name"`
	}
	ws.ExpectPayload(live.EventSessionFinished, &finished, 2*time.Second)
	assert.Equal(t, "Pull", finished.NextDayName)

	bystander.ExpectNoMessage(100 * time.Millisecond)
}

func TestLiveHandler_RejectsBadToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	for _, token := range []string{"", "garbage"} {
		url := ts.LiveURL(token)
		_, resp, err := gorillaWS.DefaultDialer.Dial(url, nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}
}
