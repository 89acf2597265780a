package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgrworks/quotation-api/models"
	"github.com/cgrworks/quotation-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()

	st, err := store.New(store.NewMemoryPersister())
	require.NoError(t, err)

	clients := &ClientHandler{Store: st}
	budgets := &BudgetHandler{Store: st}
	quotations := &QuotationHandler{Store: st}

	r := gin.New()
	r.GET("/clients", clients.GetClients)
	r.POST("/clients", clients.CreateClient)
	r.GET("/clients/:id", clients.GetClient)
	r.PUT("/clients/:id", clients.UpdateClient)
	r.DELETE("/clients/:id", clients.DeleteClient)
	r.GET("/budgets", budgets.GetBudgets)
	r.POST("/budgets", budgets.CreateBudget)
	r.GET("/budgets/:id", budgets.GetBudget)
	r.PUT("/budgets/:id", budgets.UpdateBudget)
	r.DELETE("/budgets/:id", budgets.DeleteBudget)
	r.POST("/budgets/:id/revisions", budgets.CreateRevision)
	r.GET("/budgets/:id/revisions", budgets.GetRevisionHistory)
	r.GET("/budgets/:id/quotation", quotations.GenerateQuotation)
	r.GET("/budgets/:id/quotation/email", quotations.EmailQuotation)
	r.GET("/budgets/:id/quotation/print", quotations.PrintQuotation)
	r.GET("/quotations/sample", quotations.SampleQuotation)
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestCreateAndGetClient(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/clients", models.Client{
		CompanyName:   "Acme Builders",
		ContactPerson: "Ms. Tan",
		Email:         "tan@acme.sg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Client
	decode(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Acme Builders", created.CompanyName)

	w = doJSON(t, r, http.MethodGet, "/clients/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Client
	decode(t, w, &fetched)
	assert.Equal(t, created, fetched)
}

func TestGetClientNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/clients/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteClientReferencedByBudget(t *testing.T) {
	r, st := newTestRouter(t)

	clientID, err := st.AddClient(models.Client{CompanyName: "Acme Builders"})
	require.NoError(t, err)
	_, err = st.AddBudget(models.Budget{ClientID: clientID})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/clients/"+clientID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Still present.
	_, found := st.GetClient(clientID)
	assert.True(t, found)
}

func TestDeleteClientUnreferenced(t *testing.T) {
	r, st := newTestRouter(t)

	clientID, err := st.AddClient(models.Client{CompanyName: "Acme Builders"})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/clients/"+clientID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	_, found := st.GetClient(clientID)
	assert.False(t, found)
}

func TestCreateBudgetWithInlineClient(t *testing.T) {
	r, st := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/budgets", models.Budget{
		ClientID: models.NewClientSentinel,
		NewClient: &models.InlineClient{
			CompanyName: "Fresh Pte Ltd",
			ClientName:  "Mr. Lim",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Budget
	decode(t, w, &created)
	assert.Nil(t, created.NewClient)
	require.NotEmpty(t, created.ClientID)
	assert.NotEqual(t, models.NewClientSentinel, created.ClientID)
	assert.Equal(t, models.BudgetStatusDraft, created.Status)

	client, found := st.GetClient(created.ClientID)
	require.True(t, found)
	assert.Equal(t, "Fresh Pte Ltd", client.CompanyName)
}

func TestUpdateBudgetNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/budgets/ghost", models.Budget{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRevisionEndpoints(t *testing.T) {
	r, st := newTestRouter(t)

	id, err := st.AddBudget(models.Budget{ClientID: "1"})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/budgets/"+id+"/revisions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var revision models.Budget
	decode(t, w, &revision)
	assert.True(t, revision.IsRevision)
	assert.Equal(t, id, revision.ParentBudgetID)
	assert.Equal(t, 2, revision.RevisionNumber)

	w = doJSON(t, r, http.MethodGet, "/budgets/"+id+"/revisions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history []models.Budget
	decode(t, w, &history)
	require.Len(t, history, 2)
	// Newest first.
	assert.Equal(t, revision.ID, history[0].ID)
	assert.Equal(t, id, history[1].ID)
}

func TestCreateRevisionUnknownBudget(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/budgets/ghost/revisions", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerateQuotation(t *testing.T) {
	r, st := newTestRouter(t)

	id, err := st.AddBudget(models.Budget{
		ClientID: "1",
		Project:  models.Project{ServiceType: "Waterproofing"},
		Sections: []models.Section{
			{
				ID:   "s1",
				Name: "Roof works",
				Labour: []models.LineItem{
					{Name: "Skilled Worker", Quantity: 2, UnitPrice: 150},
				},
			},
		},
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/budgets/"+id+"/quotation", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var q models.Quotation
	decode(t, w, &q)
	assert.True(t, strings.HasPrefix(q.QuotationNumber, "CGR-QUO-"))
	assert.Equal(t, id, q.BudgetID)
	assert.Equal(t, "Church of St Alphonsus (Novena Church)", q.Client.Name)
	require.Len(t, q.Sections, 1)
	assert.Equal(t, 300.0, q.Sections[0].Amount)
	assert.Equal(t, 300.0, q.Totals.Subtotal)
	assert.Equal(t, 21.0, q.Totals.GST)
	assert.Equal(t, 321.0, q.Totals.Total)

	// The generated document becomes the current quotation.
	current := st.Snapshot().CurrentQuotation
	require.NotNil(t, current)
	assert.Equal(t, q.ID, current.ID)
}

func TestGenerateQuotationUnknownBudget(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/budgets/ghost/quotation", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmailQuotation(t *testing.T) {
	r, st := newTestRouter(t)

	id, err := st.AddBudget(models.Budget{ClientID: "1"})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/budgets/"+id+"/quotation/email", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decode(t, w, &resp)
	assert.True(t, strings.HasPrefix(resp["mailto"], "mailto:"))
	assert.Contains(t, resp["subject"], "Quotation CGR-QUO-")
	assert.Contains(t, resp["body"], "Dear ")
}

func TestEmailQuotationNoClientEmail(t *testing.T) {
	r, st := newTestRouter(t)

	clientID, err := st.AddClient(models.Client{CompanyName: "No Mail Pte Ltd"})
	require.NoError(t, err)
	id, err := st.AddBudget(models.Budget{ClientID: clientID})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/budgets/"+id+"/quotation/email", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPrintQuotation(t *testing.T) {
	r, st := newTestRouter(t)

	id, err := st.AddBudget(models.Budget{ClientID: "1"})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/budgets/"+id+"/quotation/print", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<!DOCTYPE html>")
	assert.Contains(t, w.Body.String(), "Century Global Resources Pte Ltd")
}

func TestSampleQuotationEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/quotations/sample", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var q models.Quotation
	decode(t, w, &q)
	assert.Equal(t, "CGR-QUO-NC-25-03-077", q.QuotationNumber)
	require.Len(t, q.Sections, 3)
}
