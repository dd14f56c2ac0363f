package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/helpnet-api/schema"
)

// askForHelp is the API for asking help from others
func (s *Server) askForHelp(c *gin.Context) {
	requester := c.GetString("requester")

	var params schema.HelpDraft
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	help, err := s.store.RequestHelp(requester, params)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"result": s.populateHelp(requester, help),
	})
}

// listHelps is the API to browse help requests
func (s *Server) listHelps(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Status   string  `form:"status"`
		Category string  `form:"category"`
		Urgency  string  `form:"urgency"`
		Radius   float64 `form:"radius"`
		pageQuery
		locationQuery
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	center, err := params.center(c, false)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	page, err := s.store.ListHelps(schema.HelpFilter{
		Status:     params.Status,
		Category:   params.Category,
		Urgency:    params.Urgency,
		Center:     center,
		Radius:     params.Radius,
		Pagination: params.pagination(),
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":     s.populateHelps(requester, page.Items),
		"pagination": page.Pagination,
	})
}

// nearbyHelps is the API to find open help requests around a location
func (s *Server) nearbyHelps(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Category    string  `form:"category"`
		Urgency     string  `form:"urgency"`
		MaxDistance float64 `form:"max_distance"`
		pageQuery
		locationQuery
	}

	if err := c.BindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	center, err := params.center(c, true)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.MaxDistance == 0 {
		params.MaxDistance = viper.GetFloat64("help.nearby_distance")
	}
	if params.MaxDistance == 0 {
		params.MaxDistance = schema.DefaultSearchRadius
	}

	page, err := s.store.NearbyHelps(schema.NearbyQuery{
		Center:      *center,
		MaxDistance: params.MaxDistance,
		Category:    params.Category,
		Urgency:     params.Urgency,
		Pagination:  params.pagination(),
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":     s.populateHelps(requester, page.Items),
		"pagination": page.Pagination,
	})
}

// helpDetail is the API to query a help request
func (s *Server) helpDetail(c *gin.Context) {
	requester := c.GetString("requester")

	help, err := s.store.GetHelp(c.Param("helpID"))
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": s.populateHelp(requester, help),
	})
}

// updateHelp is the API for the requester to edit an open help request
func (s *Server) updateHelp(c *gin.Context) {
	requester := c.GetString("requester")

	var params schema.HelpChanges
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	help, err := s.store.UpdateHelp(c.Param("helpID"), requester, params)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": s.populateHelp(requester, help),
	})
}

// cancelHelp is the API for the requester to cancel an open help request
func (s *Server) cancelHelp(c *gin.Context) {
	requester := c.GetString("requester")

	if _, err := s.store.CancelHelp(c.Param("helpID"), requester); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// acceptHelp is the API for a helper to take an open help request. The chat
// is null when it could not be created, the client opens it through
// POST /api/chats.
func (s *Server) acceptHelp(c *gin.Context) {
	requester := c.GetString("requester")

	help, chat, err := s.store.AcceptHelp(c.Param("helpID"), requester)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	result := gin.H{
		"request": s.populateHelp(requester, help),
		"chat":    nil,
	}
	if chat != nil {
		result["chat"] = s.populateChat(chat)
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// completeHelp is the API to mark an in-progress help request as completed
func (s *Server) completeHelp(c *gin.Context) {
	requester := c.GetString("requester")

	help, err := s.store.CompleteHelp(c.Param("helpID"), requester)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": s.populateHelp(requester, help),
	})
}

// rateHelp is the API for the requester to rate the helper of a completed
// help request
func (s *Server) rateHelp(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Score    int    `json:"score"`
		Feedback string `json:"feedback"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	help, err := s.store.RateHelp(c.Param("helpID"), requester, params.Score, params.Feedback)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": s.populateHelp(requester, help),
	})
}

// helpChat is the API to find the chat of a help request
func (s *Server) helpChat(c *gin.Context) {
	requester := c.GetString("requester")

	chat, err := s.store.GetHelpChat(c.Param("helpID"), requester)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	if chat == nil {
		c.JSON(http.StatusOK, gin.H{"result": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": s.populateChat(chat),
	})
}
