package controllers

import (
	"context"
	"errors"
	"testing"
	"time"

	"gachi/gachi/services/llm"
	"gachi/gachi/sources/psql/models"
	"gachi/gachi/types"
	"gachi/gachi/utils/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	user *models.User
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.user != nil && f.user.Email == email {
		return f.user, nil
	}
	return nil, nil
}

type createdExchange struct {
	userID   int
	question string
	answer   string
	isRisky  bool
	at       time.Time
}

type fakeQuestionStore struct {
	recent  []models.Question
	created []createdExchange
}

func (f *fakeQuestionStore) RecentByUser(ctx context.Context, userID, limit int) ([]models.Question, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeQuestionStore) CreateQuestion(ctx context.Context, userID int, question, answer string, isRisky bool, at time.Time) (*models.Question, error) {
	f.created = append(f.created, createdExchange{userID, question, answer, isRisky, at})
	return &models.Question{UserID: userID, Question: question, Answer: answer, IsRisky: isRisky, Timestamp: at}, nil
}

type fakeCompleter struct {
	answer   string
	err      error
	calls    int
	lastMsgs []llm.Message
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	f.calls++
	f.lastMsgs = messages
	return f.answer, f.err
}

type fakeRecorder struct {
	blockedInput  int
	blockedOutput int
	repeats       int
}

func (f *fakeRecorder) RecordBlockedInput(email, question string)          { f.blockedInput++ }
func (f *fakeRecorder) RecordBlockedOutput(email, question, answer string) { f.blockedOutput++ }
func (f *fakeRecorder) RecordRepeatDetected(email, question string)        { f.repeats++ }

func setupAsk(t *testing.T, recent []models.Question, answer string, upstreamErr error) (*AskController, *fakeQuestionStore, *fakeCompleter, *fakeRecorder) {
	t.Helper()
	logging.InitLogger()
	users := &fakeUserStore{user: &models.User{ID: 1, Email: "kim@example.com"}}
	questions := &fakeQuestionStore{recent: recent}
	model := &fakeCompleter{answer: answer, err: upstreamErr}
	rec := &fakeRecorder{}
	return NewAskController(users, questions, model, rec), questions, model, rec
}

func askReq(question string, save bool) types.AskRequest {
	return types.AskRequest{Question: question, SaveHistory: &save}
}

func TestAskBlockedInputNeverCallsModel(t *testing.T) {
	ctrl, questions, model, rec := setupAsk(t, nil, "네", nil)

	_, err := ctrl.Ask(context.Background(), "kim@example.com", askReq("나는 그를 죽이고 싶다", true))

	require.ErrorIs(t, err, ErrBlockedInput)
	assert.Equal(t, 0, model.calls)
	assert.Empty(t, questions.created)
	assert.Equal(t, 1, rec.blockedInput)
}

func TestAskSuccessPersists(t *testing.T) {
	ctrl, questions, model, rec := setupAsk(t, nil, "네", nil)

	answer, err := ctrl.Ask(context.Background(), "kim@example.com", askReq("오늘 날씨 어때?", true))

	require.NoError(t, err)
	assert.Equal(t, "네", answer)
	assert.Equal(t, 1, model.calls)
	require.Len(t, questions.created, 1)
	assert.Equal(t, "오늘 날씨 어때?", questions.created[0].question)
	assert.False(t, questions.created[0].isRisky)
	assert.Equal(t, 0, rec.blockedInput+rec.blockedOutput+rec.repeats)
}

func TestAskSaveHistoryFalseSkipsPersistence(t *testing.T) {
	ctrl, questions, model, _ := setupAsk(t, nil, "아니요", nil)

	answer, err := ctrl.Ask(context.Background(), "kim@example.com", askReq("오늘 날씨 어때?", false))

	require.NoError(t, err)
	assert.Equal(t, "아니요", answer)
	assert.Equal(t, 1, model.calls)
	assert.Empty(t, questions.created)
}

func TestAskRepeatSignalIsAdvisory(t *testing.T) {
	// Two of the last three are near-duplicates (similarity >= 0.7).
	recent := []models.Question{
		{Question: "중고 휴대폰 지금 바로 팔아도 될까요", Answer: "네"},
		{Question: "중고 휴대폰 지금 바로 팔아도 좋을까요", Answer: "네"},
		{Question: "전혀 다른 이야기입니다 완전히", Answer: "아니요"},
	}
	ctrl, questions, model, rec := setupAsk(t, recent, "네", nil)

	answer, err := ctrl.Ask(context.Background(), "kim@example.com", askReq("중고 휴대폰 지금 바로 팔아도 괜찮을까요", true))

	require.NoError(t, err)
	assert.Equal(t, "네", answer)
	assert.Equal(t, 1, rec.repeats)
	assert.Equal(t, 1, model.calls)
	assert.Len(t, questions.created, 1)
}

func TestAskSingleSimilarQuestionNoSignal(t *testing.T) {
	recent := []models.Question{
		{Question: "중고 휴대폰을 팔아도 되나요", Answer: "네"},
		{Question: "완전히 무관한 주제의 문장", Answer: "아니요"},
	}
	ctrl, _, _, rec := setupAsk(t, recent, "네", nil)

	_, err := ctrl.Ask(context.Background(), "kim@example.com", askReq("중고 휴대폰을 팔아도 되나요", true))

	require.NoError(t, err)
	assert.Equal(t, 0, rec.repeats)
}

func TestAskHistoryReplayedChronologically(t *testing.T) {
	// Storage hands back most-recent-first.
	recent := []models.Question{
		{Question: "세번째 질문", Answer: "셋"},
		{Question: "두번째 질문", Answer: "둘"},
		{Question: "첫번째 질문", Answer: "하나"},
	}
	ctrl, _, model, _ := setupAsk(t, recent, "네", nil)

	_, err := ctrl.Ask(context.Background(), "kim@example.com", askReq("새 질문", false))

	require.NoError(t, err)
	require.Len(t, model.lastMsgs, 1+2*3+1)
	assert.Equal(t, "첫번째 질문", model.lastMsgs[1].Content)
	assert.Equal(t, "하나", model.lastMsgs[2].Content)
	assert.Equal(t, "세번째 질문", model.lastMsgs[5].Content)
	assert.Equal(t, "새 질문", model.lastMsgs[7].Content)
}

func TestAskUpstreamFailure(t *testing.T) {
	ctrl, questions, _, _ := setupAsk(t, nil, "", errors.New("rate limited"))

	_, err := ctrl.Ask(context.Background(), "kim@example.com", askReq("오늘 날씨 어때?", true))

	require.ErrorIs(t, err, ErrUpstreamFailure)
	assert.Empty(t, questions.created)
}

func TestAskBlockedOutputNotPersistedNotReturned(t *testing.T) {
	ctrl, questions, _, rec := setupAsk(t, nil, "상대를 칼로 공격하세요", nil)

	answer, err := ctrl.Ask(context.Background(), "kim@example.com", askReq("오늘 날씨 어때?", true))

	require.ErrorIs(t, err, ErrBlockedOutput)
	assert.Empty(t, answer)
	assert.Empty(t, questions.created)
	assert.Equal(t, 1, rec.blockedOutput)
}

func TestAskUnknownUser(t *testing.T) {
	ctrl, _, model, _ := setupAsk(t, nil, "네", nil)

	_, err := ctrl.Ask(context.Background(), "nobody@example.com", askReq("오늘 날씨 어때?", true))

	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 0, model.calls)
}
