package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/cucumber/godog"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
)

// scenarioState carries one scenario's server and the last responses.
type scenarioState struct {
	t *testing.T
	f *serverFixture

	lastAnswer domain.Answer
}

func (s *scenarioState) uploads(tenant, filename, content string) error {
	rec := s.f.upload(s.t, filename, content, tenant, nil)
	if rec.Code != http.StatusOK {
		return fmt.Errorf("upload %s for %s: status %d, body %s", filename, tenant, rec.Code, rec.Body.String())
	}
	return nil
}

func (s *scenarioState) asks(tenant, question string) error {
	rec := s.f.do(s.t, http.MethodPost, "/api/query", QueryRequest{Question: question, UserID: tenant}, nil)
	if rec.Code != http.StatusOK {
		return fmt.Errorf("query as %s: status %d, body %s", tenant, rec.Code, rec.Body.String())
	}
	s.lastAnswer = decodeBody[domain.Answer](s.t, rec)
	return nil
}

func (s *scenarioState) answerCites(filename string) error {
	for _, src := range s.lastAnswer.Sources {
		if src.Filename == filename {
			return nil
		}
	}
	return fmt.Errorf("no source cites %s, sources: %+v", filename, s.lastAnswer.Sources)
}

func (s *scenarioState) noChunksRetrieved() error {
	if got := s.lastAnswer.Metadata.ChunksRetrieved; got != 0 {
		return fmt.Errorf("chunks_retrieved = %d, want 0", got)
	}
	return nil
}

func (s *scenarioState) clearsAll(tenant string) error {
	rec := s.f.do(s.t, http.MethodPost, "/api/documents/clear", ClearRequest{UserID: tenant}, nil)
	if rec.Code != http.StatusOK {
		return fmt.Errorf("clear as %s: status %d", tenant, rec.Code)
	}
	result := decodeBody[domain.DeletionResult](s.t, rec)
	if result.Failed {
		return fmt.Errorf("clear as %s reported failure", tenant)
	}
	return nil
}

func (s *scenarioState) hasDocuments(tenant string, count int) error {
	rec := s.f.do(s.t, http.MethodGet, "/api/documents?user_id="+tenant, nil, nil)
	if rec.Code != http.StatusOK {
		return fmt.Errorf("list as %s: status %d", tenant, rec.Code)
	}
	resp := decodeBody[DocumentListResponse](s.t, rec)
	if resp.Count != count {
		return fmt.Errorf("%s has %d documents, want %d", tenant, resp.Count, count)
	}
	return nil
}

func TestAcceptance(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			state := &scenarioState{t: t}

			sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
				state.f = newTestServer(t, nil)
				state.lastAnswer = domain.Answer{}
				return ctx, nil
			})

			sc.Step(`^"([^"]*)" uploads "([^"]*)" containing "([^"]*)"$`, state.uploads)
			sc.Step(`^"([^"]*)" asks "([^"]*)"$`, state.asks)
			sc.Step(`^the answer cites "([^"]*)"$`, state.answerCites)
			sc.Step(`^no chunks are retrieved$`, state.noChunksRetrieved)
			sc.Step(`^"([^"]*)" clears all documents$`, state.clearsAll)
			sc.Step(`^"([^"]*)" has (\d+) documents$`, state.hasDocuments)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("acceptance scenarios failed")
	}
}
