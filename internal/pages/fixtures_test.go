package pages

import "github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"

const costHeader = "name,state,state_code,type,degree_length,room_and_board,in_state_tuition,in_state_total,out_of_state_tuition,out_of_state_total\n"

const costCSV = costHeader +
	"A,California,CA,Public,4 Year,10000,8000,18000,20000,30000\n" +
	"B,New York,NY,Private,2 Year,12000,30000,42000,30000,42000\n" +
	"C,,DC,Private,4 Year,NA,40000,40000,40000,40000\n" +
	"E,California,CA,Private,4 Year,14000,30000,44000,30000,44000\n"

const diversityHeader = "name,total_enrollment,state,category,enrollment\n"

const diversityCSV = diversityHeader +
	"A,1000,California,Women,400\n" +
	"A,1000,California,Total Minority,300\n" +
	"A,1000,California,Asian,100\n" +
	"A,1000,California,White,500\n" +
	"B,600,New York,Women,300\n" +
	"B,600,New York,Asian,60\n" +
	"C,200,District of Columbia,Women,150\n" +
	"C,200,District of Columbia,Total Minority,100\n"

const salaryCSV = "rank,name,state_name,early_career_pay,mid_career_pay,make_world_better_percent,stem_percent\n" +
	"1,A,California,50000,90000,NA,30\n" +
	"2,B,New-York,45000,NA,40,10\n" +
	"3,C,District-of-Columbia,55000,100000,NA,20\n"

const incomeCSV = "name,state,total_price,year,campus,net_cost,income_lvl\n" +
	"A,California,20000,2017,On Campus,5000,\"0 to 30,000\"\n" +
	"A,California,20000,2017,On Campus,10000,\"48_001 to 75,000\"\n" +
	"B,New York,40000,2017,On Campus,20000,\"0 to 30,000\"\n" +
	"B,New York,0,2017,On Campus,50,\"30,001 to 48,000\"\n" +
	"B,New York,0,2017,On Campus,0,\"30,001 to 48,000\"\n" +
	"A,California,20000,2018,On Campus,30000,\"Over 110,000\"\n" +
	"A,California,20000,2018,On Campus,2000,\"Over 110,000\"\n" +
	"Z,Nowhere,1000,2016,On Campus,500,\"0 to 30,000\"\n"

func fixtureSource() dataset.MemSource {
	return dataset.MemSource{
		dataset.TuitionCost:     costCSV,
		dataset.DiversitySchool: diversityCSV,
		dataset.SalaryPotential: salaryCSV,
		dataset.TuitionIncome:   incomeCSV,
	}
}
