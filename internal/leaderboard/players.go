package leaderboard

// mockPlayers stand in for a remote leaderboard until one exists.
var mockPlayers = []Player{
	{UserID: "player_001", Username: "GameMaster", BestScore: 24580, BestTile: 2048, GamesWon: 45, GamesPlayed: 120, WinRate: 37.5, TotalMoves: 3456},
	{UserID: "player_002", Username: "TileMerger", BestScore: 18920, BestTile: 1024, GamesWon: 32, GamesPlayed: 95, WinRate: 33.7, TotalMoves: 2890},
	{UserID: "player_003", Username: "ProSwiper", BestScore: 16340, BestTile: 2048, GamesWon: 28, GamesPlayed: 88, WinRate: 31.8, TotalMoves: 2567},
	{UserID: "player_004", Username: "2048Legend", BestScore: 15670, BestTile: 1024, GamesWon: 25, GamesPlayed: 82, WinRate: 30.5, TotalMoves: 2345},
	{UserID: "player_005", Username: "GridKing", BestScore: 14220, BestTile: 512, GamesWon: 22, GamesPlayed: 75, WinRate: 29.3, TotalMoves: 2123},
	{UserID: "player_006", Username: "NumberNinja", BestScore: 13580, BestTile: 1024, GamesWon: 20, GamesPlayed: 70, WinRate: 28.6, TotalMoves: 1987},
	{UserID: "player_007", Username: "SwipeQueen", BestScore: 12940, BestTile: 512, GamesWon: 18, GamesPlayed: 65, WinRate: 27.7, TotalMoves: 1845},
	{UserID: "player_008", Username: "TileTitan", BestScore: 11760, BestTile: 512, GamesWon: 16, GamesPlayed: 60, WinRate: 26.7, TotalMoves: 1723},
	{UserID: "player_009", Username: "MergeMaster", BestScore: 10580, BestTile: 256, GamesWon: 14, GamesPlayed: 55, WinRate: 25.5, TotalMoves: 1589},
	{UserID: "player_010", Username: "GridGuru", BestScore: 9820, BestTile: 512, GamesWon: 12, GamesPlayed: 50, WinRate: 24.0, TotalMoves: 1456},
	{UserID: "player_011", Username: "PuzzlePro", BestScore: 8940, BestTile: 256, GamesWon: 10, GamesPlayed: 45, WinRate: 22.2, TotalMoves: 1345},
	{UserID: "player_012", Username: "SlideAce", BestScore: 7860, BestTile: 256, GamesWon: 8, GamesPlayed: 40, WinRate: 20.0, TotalMoves: 1234},
	{UserID: "player_013", Username: "BlockBuster", BestScore: 6780, BestTile: 128, GamesWon: 6, GamesPlayed: 35, WinRate: 17.1, TotalMoves: 1123},
	{UserID: "player_014", Username: "Combo2048", BestScore: 5920, BestTile: 256, GamesWon: 5, GamesPlayed: 30, WinRate: 16.7, TotalMoves: 987},
	{UserID: "player_015", Username: "TileRookie", BestScore: 4560, BestTile: 128, GamesWon: 3, GamesPlayed: 25, WinRate: 12.0, TotalMoves: 856},
}

// MockPlayers returns a copy of the built-in players.
func MockPlayers() []Player {
	out := make([]Player, len(mockPlayers))
	copy(out, mockPlayers)
	return out
}
