package api

import (
	"github.com/bitmark-inc/helpnet-api/schema"
)

type helpResponse struct {
	*schema.HelpRequest
	RequesterInfo *schema.AccountSummary `json:"requester_info,omitempty"`
	HelperInfo    *schema.AccountSummary `json:"helper_info,omitempty"`
}

type chatResponse struct {
	*schema.Chat
	ParticipantInfo []schema.AccountSummary `json:"participant_info"`
}

// summaries looks up the directory entries of ids. A failing directory only
// leaves the summaries out of the response.
func (s *Server) summaries(ids []string) map[string]schema.AccountSummary {
	result, err := s.store.AccountSummaries(ids)
	if err != nil {
		log.WithError(err).Warn("fail to load account summaries")
		return map[string]schema.AccountSummary{}
	}
	return result
}

// populateHelps attaches requester and helper summaries. The requester of an
// anonymous request stays hidden from everybody else.
func (s *Server) populateHelps(viewer string, helps []schema.HelpRequest) []helpResponse {
	ids := make([]string, 0, len(helps)*2)
	for _, h := range helps {
		ids = append(ids, h.Requester, h.Helper)
	}
	infos := s.summaries(ids)

	result := make([]helpResponse, 0, len(helps))
	for i := range helps {
		h := &helps[i]
		r := helpResponse{HelpRequest: h}

		if !h.IsAnonymous || h.Requester == viewer {
			if info, ok := infos[h.Requester]; ok {
				r.RequesterInfo = &info
			}
		}
		if info, ok := infos[h.Helper]; ok && h.Helper != "" {
			r.HelperInfo = &info
		}
		result = append(result, r)
	}
	return result
}

func (s *Server) populateHelp(viewer string, help *schema.HelpRequest) helpResponse {
	return s.populateHelps(viewer, []schema.HelpRequest{*help})[0]
}

func (s *Server) populateChats(chats []schema.Chat) []chatResponse {
	ids := make([]string, 0, len(chats)*2)
	for _, c := range chats {
		ids = append(ids, c.Participants...)
	}
	infos := s.summaries(ids)

	result := make([]chatResponse, 0, len(chats))
	for i := range chats {
		c := &chats[i]
		r := chatResponse{
			Chat:            c,
			ParticipantInfo: make([]schema.AccountSummary, 0, len(c.Participants)),
		}
		for _, p := range c.Participants {
			if info, ok := infos[p]; ok {
				r.ParticipantInfo = append(r.ParticipantInfo, info)
			}
		}
		result = append(result, r)
	}
	return result
}

func (s *Server) populateChat(chat *schema.Chat) chatResponse {
	return s.populateChats([]schema.Chat{*chat})[0]
}
