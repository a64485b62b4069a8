package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

const defaultLeetCodeEndpoint = "https://leetcode.com/graphql"

// LeetCodeStats is the reshaped solve count per difficulty.
type LeetCodeStats struct {
	All    int `json:"all"`
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// LeetCodeController proxies the public LeetCode GraphQL stats for one
// username. Responses are cached so page loads do not hammer the upstream.
type LeetCodeController struct {
	Username string
	Endpoint string

	client *http.Client
	cache  *cache.Cache
}

func NewLeetCodeController(username string) *LeetCodeController {
	return &LeetCodeController{
		Username: username,
		Endpoint: defaultLeetCodeEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		cache:    cache.New(5*time.Minute, 10*time.Minute),
	}
}

type leetCodeResponse struct {
	Data struct {
		MatchedUser struct {
			SubmitStats struct {
				AcSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStats"`
		} `json:"matchedUser"`
	} `json:"data"`
}

// Stats serves GET /dsa/leetcode-stats.
func (ctl *LeetCodeController) Stats(c *gin.Context) {
	if cached, found := ctl.cache.Get(ctl.Username); found {
		c.JSON(http.StatusOK, cached.(LeetCodeStats))
		return
	}

	stats, err := ctl.fetch(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch LeetCode stats",
			"error":   err.Error(),
		})
		return
	}

	ctl.cache.Set(ctl.Username, stats, cache.DefaultExpiration)
	c.JSON(http.StatusOK, stats)
}

func (ctl *LeetCodeController) fetch(c *gin.Context) (LeetCodeStats, error) {
	query := fmt.Sprintf(`{
		matchedUser(username: %q) {
			submitStats: submitStatsGlobal {
				acSubmissionNum {
					difficulty
					count
					submissions
				}
			}
		}
	}`, ctl.Username)

	body, err := json.Marshal(gin.H{"query": query})
	if err != nil {
		return LeetCodeStats{}, err
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, ctl.Endpoint, bytes.NewReader(body))
	if err != nil {
		return LeetCodeStats{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ctl.client.Do(req)
	if err != nil {
		return LeetCodeStats{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LeetCodeStats{}, fmt.Errorf("leetcode returned status %d", resp.StatusCode)
	}

	var parsed leetCodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return LeetCodeStats{}, err
	}

	var stats LeetCodeStats
	for _, entry := range parsed.Data.MatchedUser.SubmitStats.AcSubmissionNum {
		switch entry.Difficulty {
		case "All":
			stats.All = entry.Count
		case "Easy":
			stats.Easy = entry.Count
		case "Medium":
			stats.Medium = entry.Count
		case "Hard":
			stats.Hard = entry.Count
		}
	}
	return stats, nil
}
