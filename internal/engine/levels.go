package engine

// LevelThreshold is one row of the leveling table: the minimum cumulative XP
// for a level and its display name.
type LevelThreshold struct {
	Level int
	MinXP int
	Name  string
}

// levelTable is ordered by ascending MinXP. Level is always recomputed from
// this table and never incremented in place, so rows can be added or retuned
// between releases without desyncing stored profiles.
var levelTable = []LevelThreshold{
	{1, 0, "Seeker"},
	{2, 100, "Learner"},
	{3, 250, "Student"},
	{4, 500, "Committed"},
	{5, 1000, "Devoted"},
	{6, 2000, "Steadfast"},
	{7, 3500, "Guided"},
	{8, 5500, "Luminous"},
	{9, 8000, "Radiant"},
	{10, 11500, "Exemplar"},
}

// LevelForXP returns the highest level whose MinXP the given total reaches.
func LevelForXP(xp int) int {
	level := levelTable[0].Level
	for _, t := range levelTable {
		if xp < t.MinXP {
			break
		}
		level = t.Level
	}
	return level
}

// LevelInfo describes a level for display. NextMinXP is 0 at the top level.
type LevelInfo struct {
	Level     int
	Name      string
	MinXP     int
	NextMinXP int
}

func levelInfoForXP(xp int) LevelInfo {
	info := LevelInfo{Level: levelTable[0].Level, Name: levelTable[0].Name}
	for i, t := range levelTable {
		if xp < t.MinXP {
			break
		}
		info = LevelInfo{Level: t.Level, Name: t.Name, MinXP: t.MinXP}
		if i+1 < len(levelTable) {
			info.NextMinXP = levelTable[i+1].MinXP
		}
	}
	return info
}
