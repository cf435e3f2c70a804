// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// InviteCode is a one-time registration credential.
//
// Used transitions false -> true exactly once, in the same transaction that
// creates the user it authorizes.
type InviteCode struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Used      bool       `json:"used"`
	ExpiresAt *time.Time `json:"expiresAt"`
	UsedBy    *string    `json:"usedBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// IsExpired reports whether the code has an expiry that lies before now.
func (c InviteCode) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && !c.ExpiresAt.After(now)
}

// InviteCodeView is an invite code as listed in the admin console, joined
// with the username of the account that consumed it.
type InviteCodeView struct {
	ID             string     `json:"id"`
	Code           string     `json:"code"`
	Used           bool       `json:"used"`
	ExpiresAt      *time.Time `json:"expiresAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UsedByUsername *string    `json:"usedBy"`
}

// CreateInviteCodesRequest is the body of POST /api/admin/invite-codes.
type CreateInviteCodesRequest struct {
	Count     int        `json:"count"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// CreateInviteCodesResponse lists freshly generated codes.
type CreateInviteCodesResponse struct {
	Codes []InviteCode `json:"codes"`
}
