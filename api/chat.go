package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/helpnet-api/schema"
)

// listChats is the API to list the active chats of a user
func (s *Server) listChats(c *gin.Context) {
	requester := c.GetString("requester")

	chats, err := s.store.ListChats(requester)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": s.populateChats(chats),
	})
}

// unreadCount is the API to count the unread messages of a user
func (s *Server) unreadCount(c *gin.Context) {
	requester := c.GetString("requester")

	count, err := s.store.UnreadCount(requester)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{"count": count},
	})
}

// startChat is the API to open the chat with the other side of a help
// request. Calling it again returns the same chat.
func (s *Server) startChat(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		HelpRequestID string `json:"help_request_id"`
		OtherUserID   string `json:"other_user_id"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	chat, err := s.store.StartChat(requester, params.HelpRequestID, params.OtherUserID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": s.populateChat(chat),
	})
}

// chatDetail is the API to read a chat. Messages from others become read.
func (s *Server) chatDetail(c *gin.Context) {
	requester := c.GetString("requester")

	chat, err := s.store.GetChat(c.Param("chatID"), requester)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": s.populateChat(chat),
	})
}

// sendMessage is the API to post a message into a chat
func (s *Server) sendMessage(c *gin.Context) {
	requester := c.GetString("requester")

	var params schema.MessageDraft
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	chat, message, err := s.store.SendMessage(c.Param("chatID"), requester, params)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"chat":    s.populateChat(chat),
			"message": message,
		},
	})
}

// markChatRead is the API to mark the messages of a chat as read
func (s *Server) markChatRead(c *gin.Context) {
	requester := c.GetString("requester")

	if _, err := s.store.MarkChatRead(c.Param("chatID"), requester); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// deactivateChat is the API to close a chat for all its participants
func (s *Server) deactivateChat(c *gin.Context) {
	requester := c.GetString("requester")

	if err := s.store.DeactivateChat(c.Param("chatID"), requester); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
