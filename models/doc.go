// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - Step1Request: initial_range, agent_email, sid
  - Step2Request: decision ("continue" or "finish") plus carried params
  - Step3Request: specific_price, best_feature, improvement_note, carried params

# Response Types

Types for JSON responses:

  - Step1Response: response_id, sid, next_url
  - Step2Response: next_url
  - Step3FormResponse: initial_range, specific_prices, best_features
  - Step3Response: response_id, updated, next_url
  - DashboardResponse: distributions, themes, comments, raw listing
  - ErrorResponse: error, message

# Domain Types

SurveyResponse is the only persisted entity. One record is created at entry
or step 1 and completed (specific_price, best_feature, improvement_note) by
a single step-3 update. The session token is never exposed in JSON.

# Constants

Price bands (exact strings, en dash included):

	BandHigh = "$601k–$700k"
	BandMid  = "$501k–$600k"
	BandLow  = "$401k–$500k"

Feature options:

	Location, Layout, Condition/Updates, Yard/Lot, Price

# Price Band Arithmetic

SubRanges partitions a band into five contiguous $20k sub-ranges:

	models.SubRanges("$501k–$600k")
	// ["$501k–$520k" "$521k–$540k" "$541k–$560k" "$561k–$580k" "$581k–$600k"]

Unrecognized input falls back to the default band's sub-ranges; loose
matching on the two boundary numbers tolerates formatting drift.
*/
package models
