package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/helpnet-api/schema"
)

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")
	accountID := c.GetString("requester")

	var params struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	a, err := s.store.CreateAccount(accountID, params.Name, params.Role)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdateProfile is the API to update the name or the avatar of a user
func (s *Server) accountUpdateProfile(c *gin.Context) {
	accountID := c.GetString("requester")

	var params struct {
		Name   *string `json:"name"`
		Avatar *string `json:"avatar"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	account, err := s.store.UpdateAccountProfile(accountID, params.Name, params.Avatar)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountProfile is the API to query the public profile of any account
func (s *Server) accountProfile(c *gin.Context) {
	account, err := s.store.GetAccount(c.Param("accountID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account.Summary(),
	})
}

// accountHelps is the API to list the help requests a user made or helped with
func (s *Server) accountHelps(c *gin.Context) {
	accountID := c.GetString("requester")

	var params struct {
		Type   string `form:"type"`
		Status string `form:"status"`
		pageQuery
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	page, err := s.store.UserHelps(schema.UserHelpFilter{
		AccountID:  accountID,
		Role:       params.Type,
		Status:     params.Status,
		Pagination: params.pagination(),
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":     s.populateHelps(accountID, page.Items),
		"pagination": page.Pagination,
	})
}

// accountStats is the API to summarize the activity of a user
func (s *Server) accountStats(c *gin.Context) {
	accountID := c.GetString("requester")

	stats, err := s.store.AccountStats(accountID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": stats,
	})
}

// topHelpers is the API to list the best rated helpers
func (s *Server) topHelpers(c *gin.Context) {
	var params struct {
		Limit int `form:"limit"`
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	accounts, err := s.store.TopHelpers(params.Limit)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	helpers := make([]schema.AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		helpers = append(helpers, a.Summary())
	}

	c.JSON(http.StatusOK, gin.H{
		"result": helpers,
	})
}

// searchAccounts is the API to find seekers and helpers by name
func (s *Server) searchAccounts(c *gin.Context) {
	var params struct {
		Query string `form:"q"`
		Role  string `form:"role"`
		pageQuery
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	page, err := s.store.SearchAccounts(schema.AccountFilter{
		Query:      params.Query,
		Role:       params.Role,
		Pagination: params.pagination(),
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":     page.Items,
		"pagination": page.Pagination,
	})
}

// accountNotifications is the API for the activity feed of a user. Nearby
// requests are only listed when the client sends its location.
func (s *Server) accountNotifications(c *gin.Context) {
	accountID := c.GetString("requester")

	var params locationQuery
	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	center, err := params.optionalCenter(c)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	n, err := s.store.Notifications(accountID, center)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"nearby_requests": s.populateHelps(accountID, n.NearbyRequests),
			"my_requests":     s.populateHelps(accountID, n.MyRequests),
			"count":           n.Count,
		},
	})
}
