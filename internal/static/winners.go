package static

import "github.com/dom/power-league-website/internal/domain"

var previousWinners = []domain.HistoricalWinner{
	{Year: "2025", Results: []domain.DivisionResult{
		{Division: "17/18 Open", Team: "Impact 18U Carrie"},
		{Division: "15/16 Open", Team: "FaR Out 15 Gold"},
		{Division: "13/14 Open", Team: "Krush VBC 14 National"},
	}},
	{Year: "2024", Results: []domain.DivisionResult{
		{Division: "17/18 Open", Team: "FaR Out 17 Gold"},
		{Division: "15/16 Open", Team: "NorthShore 16 Betas"},
		{Division: "13/14 Open", Team: "IDV 14U Lita"},
	}},
	{Year: "2023", Results: []domain.DivisionResult{
		{Division: "17/18 Open", Team: "Inside Out 18Mizuno Black"},
		{Division: "15/16 Open", Team: "NorthShore 15 Lionfish"},
		{Division: "13/14 Open", Team: "NorthShore 14 SeaSerpents"},
	}},
	{Year: "2022", Results: []domain.DivisionResult{
		{Division: "17/18 Open", Team: "Inside Out 18Mizuno Black"},
		{Division: "15/16 Open", Team: "Dunes 16 Black"},
		{Division: "13/14 Open", Team: "FaR Out 13 Black"},
	}},
	{Year: "2021", Results: []domain.DivisionResult{
		{Division: "17/18 Open", Team: "Dunes 18 Black"},
		{Division: "15/16 Open", Team: "FaR Out 14 Black"},
		{Division: "15/16 Premier", Team: "FaR Out 14 Red"},
		{Division: "13/14 Open", Team: "FaR Out 14 Silver"},
	}},
	{Year: "2020", Results: []domain.DivisionResult{
		{Division: "17/18 Open", Team: "Dunes 17 Black"},
		{Division: "15/16 Open", Team: "FaR Out 14 Black"},
		{Division: "13/14 Open", Team: "FaR Out 13 Black"},
	}},
	{Year: "2019", Results: []domain.DivisionResult{
		{Division: "18 Open", Team: "Summit 18 Blue Elite"},
		{Division: "17 Open", Team: "Dunes 17 Black"},
		{Division: "16 Open", Team: "Far Out 16 Red"},
		{Division: "15 Open", Team: "Dunes 15 Black"},
		{Division: "14 Open", Team: "FaR Out 14 Red"},
		{Division: "13 Open", Team: "FaR Out 13 Black"},
	}},
	{Year: "2018", Results: []domain.DivisionResult{
		{Division: "18 Open", Team: "Summit 18 Blue Elite"},
		{Division: "17 Open", Team: "Dunes 17 Black"},
		{Division: "16 Open", Team: "Dunes 16 Black"},
		{Division: "15 Open", Team: "Dunes 15 Black"},
		{Division: "14 Open", Team: "TeamD 14-Red"},
		{Division: "13 Open", Team: "Dunes 13 Black"},
	}},
	{Year: "2017", Results: []domain.DivisionResult{
		{Division: "18 Open", Team: "Dunes 16 Black"},
		{Division: "17 Open", Team: "Dunes 17 Black"},
		{Division: "16 Open", Team: "Inside Out 16 Black"},
		{Division: "15 Open", Team: "Dunes 14 Black"},
		{Division: "14 Open", Team: "Dunes 14 Teal"},
		{Division: "13 Open", Team: "Dunes 13 Black"},
	}},
	{Year: "2016", Results: []domain.DivisionResult{
		{Division: "18 Open", Team: "Impact Dynamic 18 Rey", RunnerUp: "Far Out 18 Purple"},
		{Division: "16 Open", Team: "Dunes 16 Black", RunnerUp: "Impact Dynamic 16u Rachel"},
		{Division: "14 Open", Team: "Dunes 13 Black", RunnerUp: "Team D 13-1"},
	}},
}

// PreviousWinners returns the champions table, newest year first. The
// result is a deep copy.
func PreviousWinners() []domain.HistoricalWinner {
	out := make([]domain.HistoricalWinner, len(previousWinners))
	for i, w := range previousWinners {
		out[i] = domain.HistoricalWinner{
			Year:    w.Year,
			Results: append([]domain.DivisionResult(nil), w.Results...),
		}
	}
	return out
}
