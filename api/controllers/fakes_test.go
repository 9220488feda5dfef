package controllers

// In-memory stand-ins for the DynamoDB stores. They reproduce the store
// contracts the controllers rely on (conditional transitions, atomic grade
// and reset units) so the moderation and reset invariants can be tested
// deterministically without a running DynamoDB.

import (
	"context"
	"sort"
	"testing"

	"github.com/Shashwata32/EcoLeague/api/realtime"
	"github.com/Shashwata32/EcoLeague/api/transport"
	"github.com/Shashwata32/EcoLeague/logging"
	"github.com/Shashwata32/EcoLeague/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const testAdminToken = "secret"

var adminHeaders = map[string]string{"x-admin-token": testAdminToken}

type testEnv struct {
	areas       *memAreaStorage
	submissions *memSubmissionStorage
	history     *memHistoryStorage
	transactor  *memTransactor
	hub         *realtime.Hub
}

func newTestEnv(t *testing.T) (*testEnv, *gin.Engine, gin.HandlerFunc) {
	t.Helper()
	logging.Log = logrus.New()

	env := &testEnv{
		areas:       newMemAreaStorage(),
		submissions: newMemSubmissionStorage(),
		history:     &memHistoryStorage{},
		hub:         realtime.NewHub(),
	}
	env.transactor = &memTransactor{
		areas:       env.areas,
		submissions: env.submissions,
		history:     env.history,
	}
	go env.hub.Run()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	return env, r, transport.AdminAuthMiddleware(testAdminToken)
}

type memAreaStorage struct {
	areas map[string]*storage.Area
	err   error
}

func newMemAreaStorage() *memAreaStorage {
	return &memAreaStorage{areas: make(map[string]*storage.Area)}
}

func (s *memAreaStorage) Get(_ context.Context, id string) (*storage.Area, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.areas[id], nil
}

func (s *memAreaStorage) GetAll(_ context.Context) ([]*storage.Area, error) {
	if s.err != nil {
		return nil, s.err
	}
	all := make([]*storage.Area, 0, len(s.areas))
	for _, a := range s.areas {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (s *memAreaStorage) Create(_ context.Context, area *storage.Area) error {
	if s.err != nil {
		return s.err
	}
	s.areas[area.ID] = area
	return nil
}

func (s *memAreaStorage) Rename(_ context.Context, id string, name string) error {
	if s.err != nil {
		return s.err
	}
	area, ok := s.areas[id]
	if !ok {
		return storage.ErrAreaNotFound
	}
	area.Name = name
	return nil
}

func (s *memAreaStorage) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.areas, id)
	return nil
}

type memSubmissionStorage struct {
	submissions map[string]*storage.Submission
	err         error
}

func newMemSubmissionStorage() *memSubmissionStorage {
	return &memSubmissionStorage{submissions: make(map[string]*storage.Submission)}
}

func (s *memSubmissionStorage) Get(_ context.Context, id string) (*storage.Submission, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.submissions[id], nil
}

func (s *memSubmissionStorage) GetAll(_ context.Context) ([]*storage.Submission, error) {
	if s.err != nil {
		return nil, s.err
	}
	all := make([]*storage.Submission, 0, len(s.submissions))
	for _, sub := range s.submissions {
		all = append(all, sub)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (s *memSubmissionStorage) Create(_ context.Context, submission *storage.Submission) error {
	if s.err != nil {
		return s.err
	}
	s.submissions[submission.ID] = submission
	return nil
}

func (s *memSubmissionStorage) Reject(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	sub, ok := s.submissions[id]
	if !ok || sub.Status != storage.StatusPending {
		return storage.ErrSubmissionNotPending
	}
	sub.Status = storage.StatusRejected
	return nil
}

func (s *memSubmissionStorage) ClearHallOfFame(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	sub, ok := s.submissions[id]
	if !ok {
		return storage.ErrSubmissionNotFound
	}
	sub.HallOfFame = false
	return nil
}

type memHistoryStorage struct {
	records []*storage.WinnerRecord
	err     error
}

func (s *memHistoryStorage) GetAll(_ context.Context) ([]*storage.WinnerRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

// memTransactor applies the grade and reset units all-or-nothing against the
// in-memory stores, mirroring the TransactWriteItems contract.
type memTransactor struct {
	areas       *memAreaStorage
	submissions *memSubmissionStorage
	history     *memHistoryStorage
	err         error
}

func (t *memTransactor) GradeSubmission(_ context.Context, submissionID, areaID string, points int, hallOfFame bool) error {
	if t.err != nil {
		return t.err
	}
	area, ok := t.areas.areas[areaID]
	if !ok {
		return storage.ErrAreaNotFound
	}
	sub, ok := t.submissions.submissions[submissionID]
	if !ok || sub.Status != storage.StatusPending {
		return storage.ErrSubmissionNotPending
	}

	area.Score += points
	sub.Status = storage.StatusApproved
	sub.PointsAwarded = points
	sub.HallOfFame = hallOfFame
	return nil
}

func (t *memTransactor) ArchiveAndReset(_ context.Context, record *storage.WinnerRecord, areas []*storage.Area, submissions []*storage.Submission) error {
	if t.err != nil {
		return t.err
	}
	if 1+len(areas)+len(submissions) > 100 {
		return storage.ErrResetTooLarge
	}

	t.history.records = append(t.history.records, record)
	for _, area := range t.areas.areas {
		area.Score = 0
		area.Badge = storage.DefaultBadge
	}
	t.submissions.submissions = make(map[string]*storage.Submission)
	return nil
}
