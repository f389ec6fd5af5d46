package response

import (
	"clubtab/internal/usecase/commands"
	"clubtab/internal/usecase/queries"
)

type LoginResponse struct {
	MemberID    string `json:"member_id"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		MemberID:    r.MemberID.String(),
		Role:        r.Role,
		AccessToken: r.AccessToken,
	}
}

type TerminalSessionResponse struct {
	MemberID    string `json:"member_id"`
	DisplayName string `json:"display_name"`
	AccessToken string `json:"access_token"`
}

func FromTerminalLoginResult(r *commands.TerminalLoginResult) *TerminalSessionResponse {
	return &TerminalSessionResponse{
		MemberID:    r.MemberID.String(),
		DisplayName: r.DisplayName,
		AccessToken: r.AccessToken,
	}
}

type MemberResponse struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	DisplayName      string `json:"display_name"`
	Role             string `json:"role"`
	OpenBalanceCents int64  `json:"open_balance_cents"`
	IsActive         bool   `json:"is_active"`
	CreatedAt        int64  `json:"created_at"`
}

func FromMemberView(v *queries.MemberView) *MemberResponse {
	return &MemberResponse{
		ID:               v.ID.String(),
		Email:            v.Email,
		DisplayName:      v.DisplayName,
		Role:             v.Role,
		OpenBalanceCents: v.OpenBalanceCents,
		IsActive:         v.IsActive,
		CreatedAt:        v.CreatedAt.Unix(),
	}
}
