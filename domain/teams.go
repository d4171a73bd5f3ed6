package domain

import "fmt"

const teamLogosBaseURL = "https://www.mlbstatic.com/team-logos"

func teamLogoURL(teamID int) string {
	return fmt.Sprintf("%s/%d.svg", teamLogosBaseURL, teamID)
}

// Teams is the full MLB team table served by the teams endpoint and used to
// resolve the nested team objects on persisted highlights.
var Teams = []Team{
	{TeamID: 109, Name: "Arizona Diamondbacks", ShortName: "D-backs", LogoURL: teamLogoURL(109)},
	{TeamID: 133, Name: "Athletics", ShortName: "Athletics", LogoURL: teamLogoURL(133)},
	{TeamID: 144, Name: "Atlanta Braves", ShortName: "Braves", LogoURL: teamLogoURL(144)},
	{TeamID: 110, Name: "Baltimore Orioles", ShortName: "Orioles", LogoURL: teamLogoURL(110)},
	{TeamID: 111, Name: "Boston Red Sox", ShortName: "Red Sox", LogoURL: teamLogoURL(111)},
	{TeamID: 112, Name: "Chicago Cubs", ShortName: "Cubs", LogoURL: teamLogoURL(112)},
	{TeamID: 145, Name: "Chicago White Sox", ShortName: "White Sox", LogoURL: teamLogoURL(145)},
	{TeamID: 113, Name: "Cincinnati Reds", ShortName: "Reds", LogoURL: teamLogoURL(113)},
	{TeamID: 114, Name: "Cleveland Guardians", ShortName: "Guardians", LogoURL: teamLogoURL(114)},
	{TeamID: 115, Name: "Colorado Rockies", ShortName: "Rockies", LogoURL: teamLogoURL(115)},
	{TeamID: 116, Name: "Detroit Tigers", ShortName: "Tigers", LogoURL: teamLogoURL(116)},
	{TeamID: 117, Name: "Houston Astros", ShortName: "Astros", LogoURL: teamLogoURL(117)},
	{TeamID: 118, Name: "Kansas City Royals", ShortName: "Royals", LogoURL: teamLogoURL(118)},
	{TeamID: 108, Name: "Los Angeles Angels", ShortName: "Angels", LogoURL: teamLogoURL(108)},
	{TeamID: 119, Name: "Los Angeles Dodgers", ShortName: "Dodgers", LogoURL: teamLogoURL(119)},
	{TeamID: 146, Name: "Miami Marlins", ShortName: "Marlins", LogoURL: teamLogoURL(146)},
	{TeamID: 158, Name: "Milwaukee Brewers", ShortName: "Brewers", LogoURL: teamLogoURL(158)},
	{TeamID: 142, Name: "Minnesota Twins", ShortName: "Twins", LogoURL: teamLogoURL(142)},
	{TeamID: 121, Name: "New York Mets", ShortName: "Mets", LogoURL: teamLogoURL(121)},
	{TeamID: 147, Name: "New York Yankees", ShortName: "Yankees", LogoURL: teamLogoURL(147)},
	{TeamID: 143, Name: "Philadelphia Phillies", ShortName: "Phillies", LogoURL: teamLogoURL(143)},
	{TeamID: 134, Name: "Pittsburgh Pirates", ShortName: "Pirates", LogoURL: teamLogoURL(134)},
	{TeamID: 135, Name: "San Diego Padres", ShortName: "Padres", LogoURL: teamLogoURL(135)},
	{TeamID: 137, Name: "San Francisco Giants", ShortName: "Giants", LogoURL: teamLogoURL(137)},
	{TeamID: 136, Name: "Seattle Mariners", ShortName: "Mariners", LogoURL: teamLogoURL(136)},
	{TeamID: 138, Name: "St. Louis Cardinals", ShortName: "Cardinals", LogoURL: teamLogoURL(138)},
	{TeamID: 139, Name: "Tampa Bay Rays", ShortName: "Rays", LogoURL: teamLogoURL(139)},
	{TeamID: 140, Name: "Texas Rangers", ShortName: "Rangers", LogoURL: teamLogoURL(140)},
	{TeamID: 141, Name: "Toronto Blue Jays", ShortName: "Blue Jays", LogoURL: teamLogoURL(141)},
	{TeamID: 120, Name: "Washington Nationals", ShortName: "Nationals", LogoURL: teamLogoURL(120)},
}

// TeamByName resolves a team by its full name as it appears in the GUMBO
// feed. Unknown names return a bare Team carrying only the name, so a
// highlight can still be persisted for exhibition or unrecognized clubs.
func TeamByName(name string) Team {
	for _, team := range Teams {
		if team.Name == name {
			return team
		}
	}
	return Team{Name: name}
}

func TeamByID(teamID int) (Team, bool) {
	for _, team := range Teams {
		if team.TeamID == teamID {
			return team, true
		}
	}
	return Team{}, false
}
