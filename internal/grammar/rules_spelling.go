package grammar

import (
	"regexp"
	"strings"
)

var misspellings = map[string]string{
	"accomodate":     "accommodate",
	"accomodation":   "accommodation",
	"acheive":        "achieve",
	"adress":         "address",
	"agenda's":       "agendas",
	"alot":           "a lot",
	"arguement":      "argument",
	"attendence":     "attendance",
	"begining":       "beginning",
	"beleive":        "believe",
	"buisness":       "business",
	"calender":       "calendar",
	"comittee":       "committee",
	"commited":       "committed",
	"completly":      "completely",
	"concensus":      "consensus",
	"definately":     "definitely",
	"dependant":      "dependent",
	"discusion":      "discussion",
	"enviroment":     "environment",
	"equipments":     "equipment",
	"existance":      "existence",
	"foward":         "forward",
	"goverment":      "government",
	"guidlines":      "guidelines",
	"immediatly":     "immediately",
	"independant":    "independent",
	"infomation":     "information",
	"maintainance":   "maintenance",
	"maintenence":    "maintenance",
	"managment":      "management",
	"neccessary":     "necessary",
	"necesary":       "necessary",
	"occured":        "occurred",
	"occurence":      "occurrence",
	"particpants":    "participants",
	"prefered":       "preferred",
	"presense":       "presence",
	"proceedure":     "procedure",
	"recieve":        "receive",
	"recieved":       "received",
	"recomend":       "recommend",
	"recomended":     "recommended",
	"refered":        "referred",
	"responsability": "responsibility",
	"schedual":       "schedule",
	"seperate":       "separate",
	"seperately":     "separately",
	"sucessful":      "successful",
	"succesful":      "successful",
	"tommorow":       "tomorrow",
	"tomorow":        "tomorrow",
	"untill":         "until",
	"wensday":        "Wednesday",
	"wednessday":     "Wednesday",
	"wich":           "which",
	"yesturday":      "yesterday",
}

var reAnyWord = regexp.MustCompile(`\b[A-Za-z]+(?:'[a-z]+)?\b`)

func spellingRules() []Rule {
	return []Rule{{
		Name:     "spelling-dictionary",
		Category: CategorySpelling,
		Scope:    ScopeToken,
		Match:    reAnyWord,
		Rewrite: func(m Match) string {
			fix, ok := misspellings[strings.ToLower(m.Text)]
			if !ok {
				return m.Text
			}
			if fix[0] >= 'A' && fix[0] <= 'Z' {
				return fix
			}
			return matchCase(m.Text, fix)
		},
	}}
}
